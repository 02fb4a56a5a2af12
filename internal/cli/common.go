package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/projswitch/internal/catalog"
	"github.com/danieljhkim/projswitch/internal/clock"
	"github.com/danieljhkim/projswitch/internal/config"
	"github.com/danieljhkim/projswitch/internal/discover"
	"github.com/danieljhkim/projswitch/internal/engine"
	"github.com/danieljhkim/projswitch/internal/fsops"
	"github.com/danieljhkim/projswitch/internal/icons"
	"github.com/danieljhkim/projswitch/internal/state"
	"github.com/danieljhkim/projswitch/internal/workspace"
)

// runtime bundles the engine with the configuration a command may need
// alongside it.
type runtime struct {
	engine *engine.Engine
	opts   config.Options
	env    config.Env
	paths  config.Paths
	logger *log.Logger
}

// newRuntime creates an engine with real implementations of all
// dependencies, the environment captured once for the whole run.
func newRuntime() (*runtime, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "projswitch"})

	fs := fsops.NewRealFS()
	opts, err := config.LoadOptions(fs, paths.Config)
	if err != nil {
		logger.Warn("using default options", "err", err)
	}

	env, err := config.CaptureEnv(version, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to capture environment: %w", err)
	}

	store := state.NewFileStore(fs, paths.Cache, &clock.RealClock{})
	eng := engine.New(
		workspace.NewFileSource(fs, paths.Projects),
		catalog.NewNormalizer(env, icons.NewResolver(fs, paths.Icons, env.Home)),
		discover.NewDiscoverer(fs),
		state.NewTracker(store, fs, paths.Icons),
		store,
		icons.NewCommandRenderer(fs, paths.Icons, opts.IconRenderCommand),
		opts,
		env,
		*paths,
		logger,
	)

	return &runtime{engine: eng, opts: opts, env: env, paths: *paths, logger: logger}, nil
}

// outputJSON outputs a value as indented JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
