// Package state persists the environment fingerprint and the cached entry
// list between runs, and decides the cache invalidation scope from
// fingerprint changes.
package state

// Fingerprint is the composite of environment, version, and theme
// identifiers a run was produced under. Fields are compared individually,
// never as an opaque blob, so a partial change (theme only) can trigger a
// narrower invalidation than a full change.
type Fingerprint struct {
	// TerminalApp identifies the terminal application embedded in every
	// cached action command.
	TerminalApp string `json:"terminalApp,omitempty"`

	// WorkflowVersion is the projswitch version the cache was built by.
	WorkflowVersion string `json:"workflowVersion,omitempty"`

	// ThemeID identifies the launcher theme the icons were rendered for.
	ThemeID string `json:"themeId,omitempty"`
}

// InvalidationLevel is the scope of cache rebuilding a fingerprint change
// requires. Levels are ordered by severity.
type InvalidationLevel int

const (
	// InvalidateNone requires no rebuilding beyond materializing missing icons.
	InvalidateNone InvalidationLevel = iota

	// InvalidateIconsOnly requires re-rendering icons; cached entries stay valid.
	InvalidateIconsOnly

	// InvalidateFull requires clearing cached entries and rebuilding every icon.
	InvalidateFull
)

// String returns the level name for logging.
func (l InvalidationLevel) String() string {
	switch l {
	case InvalidateNone:
		return "none"
	case InvalidateIconsOnly:
		return "icons-only"
	case InvalidateFull:
		return "full"
	default:
		return "unknown"
	}
}

// maxLevel combines two independently assessed levels by severity.
func maxLevel(a, b InvalidationLevel) InvalidationLevel {
	if a > b {
		return a
	}
	return b
}
