package icons

import (
	"path/filepath"
	"strings"

	"github.com/danieljhkim/projswitch/internal/fsops"
	"github.com/danieljhkim/projswitch/internal/workspace"
)

// Resolver locates the icon file for a workspace definition.
type Resolver struct {
	fs       fsops.FS
	iconsDir string
	home     string
}

// NewResolver creates a Resolver. home is the captured user home directory
// used for tilde expansion; iconsDir holds rendered glyph icons.
func NewResolver(fs fsops.FS, iconsDir, home string) *Resolver {
	return &Resolver{fs: fs, iconsDir: iconsDir, home: home}
}

// Resolve returns the icon path for def. It never fails: when nothing
// resolves it returns the bare DefaultIconFile sentinel.
//
// The fallback chain, first match wins:
//  1. a registered glyph reference resolves to its rendered-glyph path,
//     with no filesystem probing
//  2. a tilde-prefixed icon is expanded against the home directory
//     (a local transformation; the caller's definition is never mutated)
//  3. an absolute icon that exists is returned as-is
//  4. a relative icon is probed against each definition path in order
//  5. <path>/icon.png is probed for each definition path in order
//  6. the bare default filename
//
// An absolute icon that does not exist falls through to step 5, never to
// step 4: relative candidates are only built when the icon was relative.
// This matches the historical evaluation order even though an absolute
// icon's basename may exist under one of the paths.
func (r *Resolver) Resolve(def workspace.Definition) string {
	icon := def.Icon
	if icon != "" {
		if name, ok := GlyphName(icon); ok {
			return GlyphPath(r.iconsDir, name)
		}

		if strings.HasPrefix(icon, "~") {
			icon = filepath.Join(r.home, strings.TrimPrefix(icon, "~"))
		}

		if filepath.IsAbs(icon) {
			if r.exists(icon) {
				return icon
			}
		} else {
			for _, p := range def.Paths {
				candidate := filepath.Join(p, icon)
				if r.exists(candidate) {
					return candidate
				}
			}
		}
	}

	for _, p := range def.Paths {
		candidate := filepath.Join(p, DefaultIconFile)
		if r.exists(candidate) {
			return candidate
		}
	}

	return DefaultIconFile
}

// exists reports whether path exists; probe errors count as missing so the
// chain can fall through.
func (r *Resolver) exists(path string) bool {
	ok, err := r.fs.Exists(path)
	return err == nil && ok
}
