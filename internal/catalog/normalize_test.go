package catalog

import (
	"strings"
	"testing"

	"github.com/danieljhkim/projswitch/internal/config"
	"github.com/danieljhkim/projswitch/internal/fsops"
	"github.com/danieljhkim/projswitch/internal/icons"
	"github.com/danieljhkim/projswitch/internal/workspace"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()

	env := config.Env{
		Home:            t.TempDir(),
		TerminalApp:     "Terminal",
		EditorCommand:   "code",
		FileBrowserApp:  "Finder",
		WorkflowVersion: "test",
	}
	resolver := icons.NewResolver(fsops.NewRealFS(), t.TempDir(), env.Home)
	return NewNormalizer(env, resolver)
}

func TestNormalizer_SkipsTemplates(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name string
		def  workspace.Definition
	}{
		{"no paths field", workspace.Definition{Title: "Template"}},
		{"empty paths", workspace.Definition{Title: "", Paths: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, skip := n.Normalize(tt.def)
			if entry != nil {
				t.Errorf("expected nil entry, got %+v", entry)
			}
			if skip == nil {
				t.Fatal("expected a skip")
			}
			if skip.Reason == "" {
				t.Error("expected a skip reason")
			}
		})
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newTestNormalizer(t)

	entry, skip := n.Normalize(workspace.Definition{
		Title: "Foo",
		Group: "work",
		Paths: []string{"/a", "/b c"},
	})
	if skip != nil {
		t.Fatalf("unexpected skip: %+v", skip)
	}

	if entry.Title != "Foo - work" {
		t.Errorf("Title = %q, want %q", entry.Title, "Foo - work")
	}
	if entry.Subtitle != "/a, /b c" {
		t.Errorf("Subtitle = %q, want %q", entry.Subtitle, "/a, /b c")
	}
	if entry.IconPath == "" {
		t.Error("IconPath is empty")
	}

	if !entry.Default.Enabled {
		t.Error("default action disabled")
	}
	if want := `open "/a" "/b c"`; entry.Default.Command != want {
		t.Errorf("default command = %q, want %q", entry.Default.Command, want)
	}

	if len(entry.Mods) != 5 {
		t.Fatalf("expected 5 modifier actions, got %d", len(entry.Mods))
	}
	for _, mod := range Modifiers() {
		action, ok := entry.Mods[mod]
		if !ok {
			t.Errorf("missing modifier action %q", mod)
			continue
		}
		if !action.Enabled {
			t.Errorf("modifier action %q disabled", mod)
		}
		if action.Command == "" {
			t.Errorf("modifier action %q has empty command", mod)
		}
	}

	if got := entry.Mods[ModAlt].Command; !strings.Contains(got, "Terminal") {
		t.Errorf("alt command %q does not target the terminal app", got)
	}
	if got := entry.Mods[ModCmd].Command; !strings.HasPrefix(got, "code -n ") {
		t.Errorf("cmd command %q does not force a new editor window", got)
	}
	if got := entry.Mods[ModCtrl].Command; !strings.Contains(got, "--verbose") {
		t.Errorf("ctrl command %q does not enable debug mode", got)
	}
	if got := entry.Mods[ModFn].Command; !strings.HasPrefix(got, "code -a ") {
		t.Errorf("fn command %q does not add to the last window", got)
	}
	if got := entry.Mods[ModShift].Command; !strings.Contains(got, "Finder") {
		t.Errorf("shift command %q does not target the file browser", got)
	}
}

func TestNormalizer_TitleWithoutGroup(t *testing.T) {
	n := newTestNormalizer(t)

	entry, skip := n.Normalize(workspace.Definition{Title: "Bare", Paths: []string{"/x"}})
	if skip != nil {
		t.Fatalf("unexpected skip: %+v", skip)
	}
	if entry.Title != "Bare" {
		t.Errorf("Title = %q, want %q", entry.Title, "Bare")
	}
}

func TestComputeIdentity(t *testing.T) {
	t.Run("pure function of title and subtitle", func(t *testing.T) {
		a := ComputeIdentity("Foo", "/a, /b")
		b := ComputeIdentity("Foo", "/a, /b")
		if a != b {
			t.Errorf("identity not stable: %q vs %q", a, b)
		}
	})

	t.Run("differs across inputs", func(t *testing.T) {
		seen := map[string]string{}
		pairs := [][2]string{
			{"Foo", "/a"},
			{"Foo", "/b"},
			{"Bar", "/a"},
			{"Foo - work", "/a"},
		}
		for _, p := range pairs {
			id := ComputeIdentity(p[0], p[1])
			if prev, ok := seen[id]; ok {
				t.Errorf("identity collision between %q and %v", prev, p)
			}
			seen[id] = p[0] + "|" + p[1]
		}
	})

	t.Run("same identity through normalization", func(t *testing.T) {
		n := newTestNormalizer(t)
		def := workspace.Definition{Title: "Foo", Paths: []string{"/a"}}

		e1, _ := n.Normalize(def)
		e2, _ := n.Normalize(def)
		if e1.Identity != e2.Identity {
			t.Errorf("identity not stable across runs: %q vs %q", e1.Identity, e2.Identity)
		}
	})
}

func TestSortEntries(t *testing.T) {
	t.Run("case-insensitive ascending", func(t *testing.T) {
		entries := []Entry{{Title: "Zeta"}, {Title: "alpha"}}
		SortEntries(entries)

		if entries[0].Title != "alpha" || entries[1].Title != "Zeta" {
			t.Errorf("sorted order = [%q, %q], want [alpha, Zeta]", entries[0].Title, entries[1].Title)
		}
	})

	t.Run("stable for equal titles", func(t *testing.T) {
		entries := []Entry{
			{Title: "same", Subtitle: "first"},
			{Title: "b"},
			{Title: "SAME", Subtitle: "second"},
		}
		SortEntries(entries)

		if entries[0].Title != "b" {
			t.Fatalf("entries[0].Title = %q, want %q", entries[0].Title, "b")
		}
		if entries[1].Subtitle != "first" || entries[2].Subtitle != "second" {
			t.Error("equal titles did not keep original relative order")
		}
	})
}
