// Package workspace defines the raw workspace definition model and the
// definition source that loads it from disk.
//
// Definitions are untrusted input: the user edits projects.jsonc by hand,
// so the loader tolerates comments and trailing commas, and the rest of the
// pipeline treats any individual malformed record as skippable rather than
// fatal.
package workspace

// Definition describes one project as authored by the user or synthesized
// by repository discovery.
type Definition struct {
	// Title is the display name of the project.
	Title string `json:"title"`

	// Group is an optional category suffixed to the title.
	Group string `json:"group,omitempty"`

	// Paths are the filesystem paths the project opens. A definition
	// without paths is a template and is skipped during normalization.
	Paths []string `json:"paths,omitempty"`

	// Icon optionally names the entry icon: a built-in glyph reference
	// (e.g. "icon-star"), a tilde-relative, relative, or absolute path.
	Icon string `json:"icon,omitempty"`
}

// HasPaths reports whether the definition opens at least one path.
func (d Definition) HasPaths() bool {
	return len(d.Paths) > 0
}
