package icons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/projswitch/internal/fsops"
	"github.com/danieljhkim/projswitch/internal/workspace"
)

// probeCountingFS wraps RealFS and counts existence probes.
type probeCountingFS struct {
	*fsops.RealFS
	probes int
}

func (f *probeCountingFS) Exists(path string) (bool, error) {
	f.probes++
	return f.RealFS.Exists(path)
}

func newTestResolver(t *testing.T) (*Resolver, string, string) {
	t.Helper()

	iconsDir := filepath.Join(t.TempDir(), "icons")
	home := t.TempDir()
	if err := os.MkdirAll(iconsDir, 0755); err != nil {
		t.Fatalf("failed to create icons dir: %v", err)
	}
	return NewResolver(fsops.NewRealFS(), iconsDir, home), iconsDir, home
}

func writeFile(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent: %v", err)
	}
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestResolver_GlyphReference(t *testing.T) {
	iconsDir := filepath.Join(t.TempDir(), "icons")
	home := t.TempDir()
	fs := &probeCountingFS{RealFS: fsops.NewRealFS()}
	r := NewResolver(fs, iconsDir, home)

	got := r.Resolve(workspace.Definition{
		Title: "Foo",
		Icon:  "icon-star",
		Paths: []string{"/a", "/b"},
	})

	if want := filepath.Join(iconsDir, "star.png"); got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
	if fs.probes != 0 {
		t.Errorf("glyph resolution probed the filesystem %d times, want 0", fs.probes)
	}
}

func TestResolver_UnregisteredGlyphFallsThrough(t *testing.T) {
	r, _, _ := newTestResolver(t)

	// "icon-notaglyph" is not in the registry, so it is treated as a
	// relative path; nothing exists, so the bare sentinel comes back.
	got := r.Resolve(workspace.Definition{Title: "Foo", Icon: "icon-notaglyph"})
	if got != DefaultIconFile {
		t.Errorf("Resolve = %q, want %q", got, DefaultIconFile)
	}
}

func TestResolver_TildeExpansion(t *testing.T) {
	r, _, home := newTestResolver(t)
	iconFile := filepath.Join(home, "pics", "proj.png")
	writeFile(t, iconFile)

	def := workspace.Definition{Title: "Foo", Icon: "~/pics/proj.png", Paths: []string{"/a"}}
	got := r.Resolve(def)

	if got != iconFile {
		t.Errorf("Resolve = %q, want %q", got, iconFile)
	}
	if def.Icon != "~/pics/proj.png" {
		t.Errorf("Resolve mutated the definition icon: %q", def.Icon)
	}
}

func TestResolver_RelativeIconAgainstPaths(t *testing.T) {
	r, _, _ := newTestResolver(t)
	pathA := t.TempDir()
	pathB := t.TempDir()
	iconFile := filepath.Join(pathB, "assets", "logo.png")
	writeFile(t, iconFile)

	got := r.Resolve(workspace.Definition{
		Title: "Foo",
		Icon:  filepath.Join("assets", "logo.png"),
		Paths: []string{pathA, pathB},
	})

	if got != iconFile {
		t.Errorf("Resolve = %q, want %q", got, iconFile)
	}
}

func TestResolver_AbsoluteIcon(t *testing.T) {
	r, _, _ := newTestResolver(t)

	t.Run("existing absolute icon wins", func(t *testing.T) {
		dir := t.TempDir()
		iconFile := filepath.Join(dir, "abs.png")
		writeFile(t, iconFile)

		got := r.Resolve(workspace.Definition{Title: "Foo", Icon: iconFile, Paths: []string{dir}})
		if got != iconFile {
			t.Errorf("Resolve = %q, want %q", got, iconFile)
		}
	})

	t.Run("missing absolute icon falls to per-path default, not relative candidates", func(t *testing.T) {
		dir := t.TempDir()
		// A same-basename file under the project path must NOT be found.
		writeFile(t, filepath.Join(dir, "abs.png"))
		writeFile(t, filepath.Join(dir, DefaultIconFile))

		got := r.Resolve(workspace.Definition{
			Title: "Foo",
			Icon:  filepath.Join(t.TempDir(), "abs.png"),
			Paths: []string{dir},
		})
		if want := filepath.Join(dir, DefaultIconFile); got != want {
			t.Errorf("Resolve = %q, want %q", got, want)
		}
	})
}

func TestResolver_PerPathDefault(t *testing.T) {
	r, _, _ := newTestResolver(t)
	pathA := t.TempDir()
	pathB := t.TempDir()
	writeFile(t, filepath.Join(pathB, DefaultIconFile))

	got := r.Resolve(workspace.Definition{Title: "Foo", Paths: []string{pathA, pathB}})
	if want := filepath.Join(pathB, DefaultIconFile); got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolver_BareSentinel(t *testing.T) {
	r, _, _ := newTestResolver(t)

	got := r.Resolve(workspace.Definition{Title: "Foo", Paths: []string{filepath.Join(t.TempDir(), "none")}})
	if got != DefaultIconFile {
		t.Errorf("Resolve = %q, want %q", got, DefaultIconFile)
	}
	if got == "" {
		t.Error("Resolve returned empty string")
	}
}

func TestGlyphName(t *testing.T) {
	tests := []struct {
		icon string
		name string
		ok   bool
	}{
		{"icon-star", "star", true},
		{"icon-git-branch", "git-branch", true},
		{"icon-", "", false},
		{"icon-unknownglyph", "", false},
		{"star", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		name, ok := GlyphName(tt.icon)
		if name != tt.name || ok != tt.ok {
			t.Errorf("GlyphName(%q) = (%q, %v), want (%q, %v)", tt.icon, name, ok, tt.name, tt.ok)
		}
	}
}
