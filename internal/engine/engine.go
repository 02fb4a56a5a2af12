// Package engine provides the catalog orchestration for projswitch.
//
// The engine is the main API surface called by the CLI. It drives the full
// pipeline: load raw definitions, normalize them into launcher entries,
// merge in deduplicated discovered repositories, sort, assess the
// environment fingerprint, and schedule icon materialization with the
// assessed scope. Nothing in the pipeline is fatal: bad records are
// skipped with a warning, parse failures degrade to an empty catalog, and
// a missing icon renderer becomes a single diagnostic entry.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/projswitch/internal/catalog"
	"github.com/danieljhkim/projswitch/internal/config"
	"github.com/danieljhkim/projswitch/internal/discover"
	"github.com/danieljhkim/projswitch/internal/icons"
	"github.com/danieljhkim/projswitch/internal/state"
	"github.com/danieljhkim/projswitch/internal/workspace"
)

// Engine orchestrates the projswitch pipeline.
type Engine struct {
	source     workspace.Source
	normalizer *catalog.Normalizer
	discoverer *discover.Discoverer
	tracker    *state.Tracker
	store      state.Store
	renderer   icons.Renderer
	opts       config.Options
	env        config.Env
	paths      config.Paths
	logger     *log.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	source workspace.Source,
	normalizer *catalog.Normalizer,
	discoverer *discover.Discoverer,
	tracker *state.Tracker,
	store state.Store,
	renderer icons.Renderer,
	opts config.Options,
	env config.Env,
	paths config.Paths,
	logger *log.Logger,
) *Engine {
	return &Engine{
		source:     source,
		normalizer: normalizer,
		discoverer: discoverer,
		tracker:    tracker,
		store:      store,
		renderer:   renderer,
		opts:       opts,
		env:        env,
		paths:      paths,
		logger:     logger,
	}
}

// BuildCatalog runs the full pipeline and returns the sorted entries,
// prefixed with a renderer diagnostic when icon rendering is unavailable.
// An empty result means the caller should emit the "no results" entry.
func (e *Engine) BuildCatalog(ctx context.Context) ([]catalog.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defs, err := e.source.Load()
	if err != nil {
		e.logger.Warn("failed to load definitions, continuing with none", "err", err)
	}
	entries := e.normalizeAll(defs)

	if e.opts.IncludeDiscoveredRepositories {
		ddefs := e.discoverer.Discover(e.opts.DiscoveryRoot, e.opts.PrettifyDiscoveredTitles)
		dentries := discover.Dedupe(e.normalizeAll(ddefs), entries)
		entries = append(entries, dentries...)
	}

	catalog.SortEntries(entries)

	level := e.assess()
	renderErr := e.renderer.Rebuild(renderItems(entries), icons.RebuildOptions{
		OnlyMissing: level != state.InvalidateFull,
	})

	if err := e.store.SaveEntries(entries); err != nil {
		e.logger.Warn("failed to cache entries", "err", err)
	}

	if renderErr != nil {
		if errors.Is(renderErr, icons.ErrRendererUnavailable) {
			entries = append([]catalog.Entry{e.rendererDiagnostic()}, entries...)
		} else {
			e.logger.Warn("icon rendering incomplete", "err", renderErr)
		}
	}

	return entries, nil
}

// RebuildIcons materializes icons for the cached entries; force rebuilds
// them all instead of only the missing ones. When nothing is cached yet it
// falls back to a full catalog build, which renders as part of the run.
// Safe to re-enter from the theme watcher while a main invocation races
// it: icon files are rendered independently and cache writes are
// last-writer-wins.
func (e *Engine) RebuildIcons(ctx context.Context, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := e.store.CachedEntries()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load cached entries: %w", err)
		}
		_, err := e.BuildCatalog(ctx)
		return err
	}

	return e.renderer.Rebuild(renderItems(entries), icons.RebuildOptions{OnlyMissing: !force})
}

// ClearCache drops the cached entry list and the stored fingerprint, so
// the next run rebuilds everything.
func (e *Engine) ClearCache() error {
	if err := e.store.ClearEntries(); err != nil {
		return err
	}
	return e.store.ClearFingerprint()
}

// normalizeAll normalizes definitions, logging and dropping the skipped
// ones; one bad record never aborts the batch.
func (e *Engine) normalizeAll(defs []workspace.Definition) []catalog.Entry {
	entries := make([]catalog.Entry, 0, len(defs))
	for _, def := range defs {
		entry, skip := e.normalizer.Normalize(def)
		if skip != nil {
			e.logger.Warn("skipping definition", "title", skip.Title, "reason", skip.Reason)
			continue
		}
		entries = append(entries, *entry)
	}
	return entries
}

// assess runs the fingerprint tracker. Assessment problems degrade to a
// full invalidation rather than failing the run.
func (e *Engine) assess() state.InvalidationLevel {
	level, err := e.tracker.Assess(state.Fingerprint{
		TerminalApp:     e.env.TerminalApp,
		WorkflowVersion: e.env.WorkflowVersion,
		ThemeID:         e.env.ThemeID,
	})
	if err != nil {
		e.logger.Warn("fingerprint assessment incomplete", "err", err)
		return state.InvalidateFull
	}
	e.logger.Debug("assessed cache invalidation", "level", level)
	return level
}

// rendererDiagnostic is the single user-visible entry surfaced when the
// icon renderer is unavailable. Its action opens the options file so the
// user can configure a render command.
func (e *Engine) rendererDiagnostic() catalog.Entry {
	title := "Icon renderer unavailable"
	subtitle := "Set iconRenderCommand in config.yaml to enable icon rendering"
	return catalog.Entry{
		Identity: catalog.ComputeIdentity(title, subtitle),
		Title:    title,
		Subtitle: subtitle,
		IconPath: icons.DefaultIconFile,
		Default: catalog.ActionSpec{
			Label:   "Open config.yaml",
			Command: fmt.Sprintf("%s %q", e.env.EditorCommand, e.paths.Config),
			Enabled: true,
		},
	}
}

// renderItems projects entries onto the renderer's input shape.
func renderItems(entries []catalog.Entry) []icons.RenderItem {
	items := make([]icons.RenderItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, icons.RenderItem{Identity: e.Identity, IconPath: e.IconPath})
	}
	return items
}
