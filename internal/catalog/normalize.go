package catalog

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/projswitch/internal/config"
	"github.com/danieljhkim/projswitch/internal/icons"
	"github.com/danieljhkim/projswitch/internal/workspace"
)

// subtitleSeparator joins definition paths into the entry subtitle.
const subtitleSeparator = ", "

// Skip explains why a definition was filtered out of the batch. Skipping
// is a filtering rule, not an error: the caller logs it and continues.
type Skip struct {
	// Title is the skipped definition's title, possibly empty.
	Title string

	// Reason is the human-readable filtering reason.
	Reason string
}

// Normalizer turns raw workspace definitions into launcher entries. It is
// a pure function of its input plus the injected environment; the only
// side effects are the resolver's filesystem existence probes.
type Normalizer struct {
	env      config.Env
	resolver *icons.Resolver
}

// NewNormalizer creates a Normalizer using the captured environment for
// action building and the resolver for icon lookup.
func NewNormalizer(env config.Env, resolver *icons.Resolver) *Normalizer {
	return &Normalizer{env: env, resolver: resolver}
}

// Normalize produces the launcher entry for def. Definitions without paths
// are templates: Normalize returns a nil entry and a Skip describing the
// filtering, never an error.
func (n *Normalizer) Normalize(def workspace.Definition) (*Entry, *Skip) {
	if !def.HasPaths() {
		return nil, &Skip{Title: def.Title, Reason: "definition has no paths"}
	}

	title := def.Title
	if def.Group != "" {
		title = title + " - " + def.Group
	}
	subtitle := strings.Join(def.Paths, subtitleSeparator)
	quoted := quotePaths(def.Paths)

	return &Entry{
		Identity: ComputeIdentity(title, subtitle),
		Title:    title,
		Subtitle: subtitle,
		IconPath: n.resolver.Resolve(def),
		Default: ActionSpec{
			Label:   "Open with default application",
			Command: "open " + quoted,
			Enabled: true,
		},
		Mods: map[Modifier]ActionSpec{
			ModAlt: {
				Label:   fmt.Sprintf("Open in %s", n.env.TerminalApp),
				Command: fmt.Sprintf("open -a %q %s", n.env.TerminalApp, quoted),
				Enabled: true,
			},
			ModCmd: {
				Label:   "Open in a new editor window",
				Command: fmt.Sprintf("%s -n %s", n.env.EditorCommand, quoted),
				Enabled: true,
			},
			ModCtrl: {
				Label:   "Open in editor debug mode",
				Command: fmt.Sprintf("%s --verbose %s", n.env.EditorCommand, quoted),
				Enabled: true,
			},
			ModFn: {
				Label:   "Add to last editor window",
				Command: fmt.Sprintf("%s -a %s", n.env.EditorCommand, quoted),
				Enabled: true,
			},
			ModShift: {
				Label:   fmt.Sprintf("Open in %s", n.env.FileBrowserApp),
				Command: fmt.Sprintf("open -a %q %s", n.env.FileBrowserApp, quoted),
				Enabled: true,
			},
		},
	}, nil
}

// quotePaths joins paths into a single shell argument string, each path
// double-quoted to tolerate spaces.
func quotePaths(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, " ")
}
