package state

import (
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/projswitch/internal/fsops"
)

// Tracker compares the current fingerprint against the stored one and
// decides the invalidation scope.
type Tracker struct {
	store    Store
	fs       fsops.FS
	iconsDir string
}

// NewTracker creates a Tracker. iconsDir is probed for existence: a
// missing icons directory means the rendered icons are gone regardless of
// what the fingerprint says.
func NewTracker(store Store, fs fsops.FS, iconsDir string) *Tracker {
	return &Tracker{store: store, fs: fs, iconsDir: iconsDir}
}

// Assess compares current against the stored fingerprint and returns the
// required invalidation level:
//   - no stored fingerprint, or the icons directory missing: full
//   - terminal app or workflow version changed: full (every cached action
//     command embeds them)
//   - theme changed: icons only (entries are theme-independent)
//
// Rules are evaluated independently and combined by maximum severity. The
// new fingerprint is persisted unconditionally afterwards, so the next
// comparison always runs against the latest observed values. A full
// invalidation also clears the cached entry list.
func (t *Tracker) Assess(current Fingerprint) (InvalidationLevel, error) {
	level := InvalidateNone

	stored, err := t.store.LoadFingerprint()
	switch {
	case errors.Is(err, os.ErrNotExist):
		level = InvalidateFull
	case err != nil:
		// An unreadable fingerprint is indistinguishable from a first run.
		level = InvalidateFull
	default:
		if stored.TerminalApp != current.TerminalApp {
			level = maxLevel(level, InvalidateFull)
		}
		if stored.WorkflowVersion != current.WorkflowVersion {
			level = maxLevel(level, InvalidateFull)
		}
		if stored.ThemeID != current.ThemeID {
			level = maxLevel(level, InvalidateIconsOnly)
		}
	}

	if exists, err := t.fs.Exists(t.iconsDir); err != nil || !exists {
		level = maxLevel(level, InvalidateFull)
	}

	if err := t.store.SaveFingerprint(&current); err != nil {
		return level, fmt.Errorf("failed to persist fingerprint: %w", err)
	}

	if level == InvalidateFull {
		if err := t.store.ClearEntries(); err != nil {
			return level, fmt.Errorf("failed to clear entry cache: %w", err)
		}
	}

	return level, nil
}
