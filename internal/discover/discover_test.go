package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/projswitch/internal/fsops"
)

// makeRepo creates a subdirectory of root with a .git directory.
func makeRepo(t *testing.T, root, name string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(root, name, ".git"), 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}
}

func TestDiscoverer_Discover(t *testing.T) {
	d := NewDiscoverer(fsops.NewRealFS())

	t.Run("finds version-controlled subdirectories", func(t *testing.T) {
		root := t.TempDir()
		makeRepo(t, root, "alpha")
		makeRepo(t, root, "beta")
		// Plain directory and a file must be ignored.
		if err := os.MkdirAll(filepath.Join(root, "not-a-repo"), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		defs := d.Discover(root, false)
		if len(defs) != 2 {
			t.Fatalf("expected 2 definitions, got %d", len(defs))
		}
		for _, def := range defs {
			if def.Group != DiscoveredGroup {
				t.Errorf("Group = %q, want %q", def.Group, DiscoveredGroup)
			}
			if len(def.Paths) != 1 {
				t.Fatalf("expected 1 path, got %d", len(def.Paths))
			}
			if filepath.Dir(def.Paths[0]) != root {
				t.Errorf("path %q not under root", def.Paths[0])
			}
		}
	})

	t.Run("git file counts as version-controlled", func(t *testing.T) {
		root := t.TempDir()
		worktree := filepath.Join(root, "wt")
		if err := os.MkdirAll(worktree, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(worktree, ".git"), []byte("gitdir: /elsewhere"), 0644); err != nil {
			t.Fatalf("failed to write .git file: %v", err)
		}

		defs := d.Discover(root, false)
		if len(defs) != 1 {
			t.Fatalf("expected 1 definition, got %d", len(defs))
		}
	})

	t.Run("prettifies titles", func(t *testing.T) {
		root := t.TempDir()
		makeRepo(t, root, "my-cool_project")

		defs := d.Discover(root, true)
		if len(defs) != 1 {
			t.Fatalf("expected 1 definition, got %d", len(defs))
		}
		if defs[0].Title != "My Cool Project" {
			t.Errorf("Title = %q, want %q", defs[0].Title, "My Cool Project")
		}
	})

	t.Run("raw titles when prettify disabled", func(t *testing.T) {
		root := t.TempDir()
		makeRepo(t, root, "my-cool_project")

		defs := d.Discover(root, false)
		if defs[0].Title != "my-cool_project" {
			t.Errorf("Title = %q, want %q", defs[0].Title, "my-cool_project")
		}
	})

	t.Run("unreadable root yields empty", func(t *testing.T) {
		defs := d.Discover(filepath.Join(t.TempDir(), "does-not-exist"), true)
		if len(defs) != 0 {
			t.Errorf("expected no definitions, got %d", len(defs))
		}
	})
}

func TestPrettifyTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alpha", "Alpha"},
		{"my-cool_project", "My Cool Project"},
		{"already Title", "Already Title"},
		{"UPPER", "UPPER"},
	}

	for _, tt := range tests {
		if got := prettifyTitle(tt.in); got != tt.want {
			t.Errorf("prettifyTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
