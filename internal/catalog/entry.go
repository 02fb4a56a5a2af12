// Package catalog defines the canonical launcher entry model and the
// normalization of raw workspace definitions into entries.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Modifier is a launcher modifier key.
type Modifier string

// The five modifier keys every entry's action map carries.
const (
	ModAlt   Modifier = "alt"
	ModCmd   Modifier = "cmd"
	ModCtrl  Modifier = "ctrl"
	ModFn    Modifier = "fn"
	ModShift Modifier = "shift"
)

// Modifiers returns the fixed modifier keys in a stable order.
func Modifiers() []Modifier {
	return []Modifier{ModAlt, ModCmd, ModCtrl, ModFn, ModShift}
}

// ActionSpec is one shell-invocable open action. Built once per entry per
// modifier and never mutated afterwards.
type ActionSpec struct {
	// Label is the human-readable action description.
	Label string `json:"label"`

	// Command is the shell invocation that performs the action.
	Command string `json:"command"`

	// Enabled reports whether the action can run.
	Enabled bool `json:"enabled"`
}

// Entry is the canonical, renderable record the host launcher displays.
type Entry struct {
	// Identity is the stable cache key, a pure function of title and
	// subtitle: identical logical workspaces collapse to the same key
	// across runs.
	Identity string `json:"identity"`

	// Title is the display title, including the optional group suffix.
	Title string `json:"title"`

	// Subtitle is the definition paths joined by ", ", or empty.
	Subtitle string `json:"subtitle"`

	// IconPath is the resolved icon file path.
	IconPath string `json:"iconPath"`

	// Default is the action run without any modifier held.
	Default ActionSpec `json:"default"`

	// Mods maps each modifier key to its alternate action. Exactly the
	// five fixed keys are present when the definition had paths.
	Mods map[Modifier]ActionSpec `json:"mods"`
}

// ComputeIdentity derives the stable entry identity from title and
// subtitle. It must never depend on run-specific values; the SHA-256 of
// the joined UTF-8 bytes keeps identical logical workspaces on the same
// cache key across runs.
func ComputeIdentity(title, subtitle string) string {
	sum := sha256.Sum256([]byte(title + "|" + subtitle))
	return hex.EncodeToString(sum[:])
}

// SortEntries orders entries by lowercase title ascending, preserving the
// original relative order of equal titles.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Title) < strings.ToLower(entries[j].Title)
	})
}
