// Package icons decides which icon file each launcher entry uses and when
// rendered glyph icons need to be (re)built.
//
// Icon resolution is a deterministic fallback chain over the definition's
// icon field and its paths; it never fails and always returns some path.
// Rasterizing a glyph name into an image file is delegated to an external
// render command behind the Renderer interface.
package icons

import (
	"path/filepath"
	"strings"
)

// GlyphPrefix marks an icon reference as a built-in glyph, e.g. "icon-star".
const GlyphPrefix = "icon-"

// DefaultIconFile is the per-path icon convention and the bare sentinel
// returned when no icon resolves. The invalidation layer treats entries
// whose icon path equals the bare sentinel as "still needs rendering".
const DefaultIconFile = "icon.png"

// glyphRegistry is the fixed set of built-in octicon glyph names resolvable
// without any filesystem search.
var glyphRegistry = map[string]struct{}{
	"alert": {}, "archive": {}, "beaker": {}, "bell": {}, "book": {},
	"bookmark": {}, "briefcase": {}, "bug": {}, "calendar": {}, "check": {},
	"checklist": {}, "clock": {}, "cloud": {}, "code": {}, "cpu": {},
	"dashboard": {}, "database": {}, "desktop": {}, "diff": {}, "file": {},
	"file-code": {}, "file-directory": {}, "file-media": {}, "flame": {},
	"gear": {}, "gift": {}, "git-branch": {}, "git-commit": {},
	"git-merge": {}, "git-pull-request": {}, "globe": {}, "graph": {},
	"heart": {}, "home": {}, "hubot": {}, "info": {}, "key": {}, "law": {},
	"light-bulb": {}, "link": {}, "lock": {}, "mail": {}, "markdown": {},
	"megaphone": {}, "octoface": {}, "organization": {}, "package": {},
	"paintcan": {}, "pencil": {}, "person": {}, "pin": {}, "plug": {},
	"project": {}, "pulse": {}, "puzzle": {}, "question": {}, "quote": {},
	"repo": {}, "rocket": {}, "ruby": {}, "search": {}, "server": {},
	"shield": {}, "star": {}, "sync": {}, "tag": {}, "telescope": {},
	"terminal": {}, "tools": {}, "trashcan": {}, "verified": {},
	"versions": {}, "zap": {},
}

// GlyphName extracts the glyph name from an icon reference. It returns
// false when the reference lacks the glyph prefix or names a glyph that is
// not in the registry; such references fall through to path resolution.
func GlyphName(icon string) (string, bool) {
	name, ok := strings.CutPrefix(icon, GlyphPrefix)
	if !ok || name == "" {
		return "", false
	}
	if _, registered := glyphRegistry[name]; !registered {
		return "", false
	}
	return name, true
}

// GlyphPath returns the precomputed rendered-glyph path for a registered
// glyph name under the icons directory.
func GlyphPath(iconsDir, name string) string {
	return filepath.Join(iconsDir, name+".png")
}
