// Package feedback marshals launcher entries into the host launcher's
// feedback document.
package feedback

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danieljhkim/projswitch/internal/catalog"
)

// Icon points the launcher at an entry's icon file.
type Icon struct {
	Path string `json:"path"`
}

// Mod is the feedback shape of one modifier action.
type Mod struct {
	Subtitle string `json:"subtitle,omitempty"`
	Arg      string `json:"arg"`
	Valid    bool   `json:"valid"`
}

// Item is one feedback row.
type Item struct {
	UID      string         `json:"uid,omitempty"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	Icon     *Icon          `json:"icon,omitempty"`
	Arg      string         `json:"arg,omitempty"`
	Valid    bool           `json:"valid"`
	Mods     map[string]Mod `json:"mods,omitempty"`
}

// Document is the feedback payload emitted to the host launcher.
type Document struct {
	Items []Item `json:"items"`
}

// FromEntries converts catalog entries into a feedback document. An empty
// catalog yields the synthetic "no results" document.
func FromEntries(entries []catalog.Entry) Document {
	if len(entries) == 0 {
		return NoResults()
	}

	doc := Document{Items: make([]Item, 0, len(entries))}
	for _, e := range entries {
		item := Item{
			UID:      e.Identity,
			Title:    e.Title,
			Subtitle: e.Subtitle,
			Icon:     &Icon{Path: e.IconPath},
			Arg:      e.Default.Command,
			Valid:    e.Default.Enabled,
		}
		if len(e.Mods) > 0 {
			item.Mods = make(map[string]Mod, len(e.Mods))
			for mod, action := range e.Mods {
				item.Mods[string(mod)] = Mod{
					Subtitle: action.Label,
					Arg:      action.Command,
					Valid:    action.Enabled,
				}
			}
		}
		doc.Items = append(doc.Items, item)
	}
	return doc
}

// NoResults returns the single synthetic entry shown when the catalog is
// empty.
func NoResults() Document {
	return Document{Items: []Item{{
		Title:    "No projects found",
		Subtitle: "Add workspace definitions to projects.jsonc or enable repository discovery",
		Valid:    false,
	}}}
}

// Emit writes the document as JSON to w.
func (d Document) Emit(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to emit feedback: %w", err)
	}
	return nil
}
