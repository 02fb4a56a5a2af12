// Package discover scans a root directory for version-controlled
// subdirectories and synthesizes workspace definitions for them, and
// removes discovered entries that duplicate configured ones.
package discover

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/danieljhkim/projswitch/internal/fsops"
	"github.com/danieljhkim/projswitch/internal/workspace"
)

// DiscoveredGroup is the fixed group marking auto-discovered definitions.
const DiscoveredGroup = "discovered"

// Discoverer finds version-controlled directories.
type Discoverer struct {
	fs fsops.FS
}

// NewDiscoverer creates a Discoverer.
func NewDiscoverer(fs fsops.FS) *Discoverer {
	return &Discoverer{fs: fs}
}

// Discover scans the immediate subdirectories of rootDir for a .git entry
// and synthesizes one definition per match, in filesystem enumeration
// order. An unreadable root yields an empty result, never an error.
// Discovered definitions are ephemeral: they are merged into the catalog
// per pass and never cached independently.
func (d *Discoverer) Discover(rootDir string, prettify bool) []workspace.Definition {
	entries, err := d.fs.ReadDir(rootDir)
	if err != nil {
		return nil
	}

	var defs []workspace.Definition
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(rootDir, entry.Name())
		if !d.isVersionControlled(path) {
			continue
		}

		title := entry.Name()
		if prettify {
			title = prettifyTitle(title)
		}
		defs = append(defs, workspace.Definition{
			Title: title,
			Group: DiscoveredGroup,
			Paths: []string{path},
		})
	}

	return defs
}

// isVersionControlled checks for a .git entry under dir. A .git regular
// file counts too (worktrees and submodules).
func (d *Discoverer) isVersionControlled(dir string) bool {
	info, err := d.fs.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// prettifyTitle converts a directory name like "my-cool_project" into
// title-case words: "My Cool Project".
func prettifyTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
