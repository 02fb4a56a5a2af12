package discover

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danieljhkim/projswitch/internal/catalog"
)

func TestDedupe(t *testing.T) {
	existing := []catalog.Entry{
		{Title: "Multi", Subtitle: "/a, /b"},
		{Title: "Single", Subtitle: "/c"},
	}

	t.Run("drops exact path matches", func(t *testing.T) {
		discovered := []catalog.Entry{
			{Title: "A", Subtitle: "/a"},
			{Title: "B", Subtitle: "/b"},
			{Title: "C", Subtitle: "/c"},
			{Title: "D", Subtitle: "/d"},
		}

		got := Dedupe(discovered, existing)
		want := []catalog.Entry{{Title: "D", Subtitle: "/d"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Dedupe mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no normalization of near-matches", func(t *testing.T) {
		discovered := []catalog.Entry{
			{Title: "Slash", Subtitle: "/a/"},
			{Title: "Case", Subtitle: "/A"},
		}

		got := Dedupe(discovered, existing)
		if len(got) != 2 {
			t.Errorf("expected near-matches retained, got %d of 2", len(got))
		}
	})

	t.Run("empty existing keeps everything", func(t *testing.T) {
		discovered := []catalog.Entry{{Title: "A", Subtitle: "/a"}}

		got := Dedupe(discovered, nil)
		if len(got) != 1 {
			t.Errorf("expected 1 entry, got %d", len(got))
		}
	})

	t.Run("empty-subtitle existing entries are ignored", func(t *testing.T) {
		discovered := []catalog.Entry{{Title: "A", Subtitle: "/a"}}
		withEmpty := []catalog.Entry{{Title: "Template", Subtitle: ""}}

		got := Dedupe(discovered, withEmpty)
		if len(got) != 1 {
			t.Errorf("expected 1 entry, got %d", len(got))
		}
	})
}
