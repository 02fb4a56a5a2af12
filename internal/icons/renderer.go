package icons

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/projswitch/internal/fsops"
)

// ErrRendererUnavailable indicates the external render command is not
// configured or not installed. Callers surface a single diagnostic entry
// and still emit the normalized entries.
var ErrRendererUnavailable = errors.New("icon renderer unavailable")

// RenderItem identifies one entry's icon for materialization.
type RenderItem struct {
	// Identity is the owning entry's identity, for diagnostics.
	Identity string

	// IconPath is the entry's resolved icon path.
	IconPath string
}

// RebuildOptions scopes a rebuild request.
type RebuildOptions struct {
	// OnlyMissing skips items whose icon file already exists. A full
	// invalidation passes false to force every glyph through the renderer.
	OnlyMissing bool
}

// Renderer materializes icon files. The core decides when to call it and
// with what scope; how pixels are produced is opaque.
type Renderer interface {
	Rebuild(items []RenderItem, opts RebuildOptions) error
}

// CommandRenderer implements Renderer by invoking an external render
// command as `<command> <glyph-name> <dest-path>` for each glyph icon.
type CommandRenderer struct {
	fs       fsops.FS
	iconsDir string
	command  string
}

// NewCommandRenderer creates a CommandRenderer. command may be empty, in
// which case every rebuild reports ErrRendererUnavailable.
func NewCommandRenderer(fs fsops.FS, iconsDir, command string) *CommandRenderer {
	return &CommandRenderer{fs: fs, iconsDir: iconsDir, command: command}
}

// Rebuild renders the glyph icons among items. Non-glyph icon paths (user
// files, the bare sentinel) have nothing to render and are skipped, and an
// absent renderer is only reported when something actually needed it.
// Render failures for individual items are collected; the rest of the
// batch still runs.
func (r *CommandRenderer) Rebuild(items []RenderItem, opts RebuildOptions) error {
	type job struct {
		glyph string
		item  RenderItem
	}
	var jobs []job
	for _, item := range items {
		glyph, ok := r.glyphFor(item.IconPath)
		if !ok {
			continue
		}
		if opts.OnlyMissing {
			if exists, err := r.fs.Exists(item.IconPath); err == nil && exists {
				continue
			}
		}
		jobs = append(jobs, job{glyph: glyph, item: item})
	}
	if len(jobs) == 0 {
		return nil
	}

	if r.command == "" {
		return ErrRendererUnavailable
	}
	if _, err := exec.LookPath(r.command); err != nil {
		return ErrRendererUnavailable
	}

	var errs []error
	for _, j := range jobs {
		glyph, item := j.glyph, j.item
		cmd := exec.Command(r.command, glyph, item.IconPath)
		if out, err := cmd.CombinedOutput(); err != nil {
			errs = append(errs, fmt.Errorf("failed to render glyph %q for entry %s: %w (%s)",
				glyph, item.Identity, err, strings.TrimSpace(string(out))))
		}
	}

	return errors.Join(errs...)
}

// glyphFor maps a rendered-glyph path under the icons directory back to its
// registered glyph name.
func (r *CommandRenderer) glyphFor(iconPath string) (string, bool) {
	if filepath.Dir(iconPath) != filepath.Clean(r.iconsDir) {
		return "", false
	}
	name := strings.TrimSuffix(filepath.Base(iconPath), ".png")
	if _, ok := glyphRegistry[name]; !ok {
		return "", false
	}
	return name, true
}

// FakeRenderer implements Renderer for testing, recording every call.
type FakeRenderer struct {
	// Calls records the items and options of each Rebuild invocation.
	Calls []FakeRenderCall

	// Err, when set, is returned from every Rebuild.
	Err error
}

// FakeRenderCall is one recorded Rebuild invocation.
type FakeRenderCall struct {
	Items []RenderItem
	Opts  RebuildOptions
}

// NewFakeRenderer creates a new FakeRenderer.
func NewFakeRenderer() *FakeRenderer {
	return &FakeRenderer{}
}

// Rebuild records the call and returns the configured error.
func (r *FakeRenderer) Rebuild(items []RenderItem, opts RebuildOptions) error {
	r.Calls = append(r.Calls, FakeRenderCall{Items: items, Opts: opts})
	return r.Err
}
