package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/projswitch/internal/hash"
	"github.com/danieljhkim/projswitch/internal/watch"
)

// watchCmd watches the theme file and rebuilds icons when it changes.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the theme file and rebuild icons on change",
	Long: `Watch the configured theme file (themeFile in config.yaml) and re-render
icons whenever its content changes. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		if rt.opts.ThemeFile == "" {
			PrintWarning("no themeFile configured; nothing to watch")
			return nil
		}

		w, err := watch.New(watch.Config{
			Path:   rt.opts.ThemeFile,
			Hasher: hash.NewSHA256Hasher(),
			Logger: rt.logger,
			OnChange: func(ctx context.Context) error {
				// Theme changes invalidate every rendered icon.
				return rt.engine.RebuildIcons(ctx, true)
			},
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		PrintInfo("watching " + rt.opts.ThemeFile)
		return w.Run(ctx)
	},
}
