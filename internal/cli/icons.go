package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/projswitch/internal/icons"
)

var rebuildAll bool

// iconsCmd groups icon maintenance commands.
var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Manage rendered icons",
}

// iconsRebuildCmd materializes icons for the cached entries.
var iconsRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Render missing icons",
	Long: `Render icons for the cached launcher entries.

By default only missing icons are rendered; --all forces every glyph
through the renderer (use after a theme change the watcher missed).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		if err := rt.engine.RebuildIcons(context.Background(), rebuildAll); err != nil {
			if errors.Is(err, icons.ErrRendererUnavailable) {
				PrintWarning("icon renderer unavailable; set iconRenderCommand in config.yaml")
				return nil
			}
			return fmt.Errorf("failed to rebuild icons: %w", err)
		}

		PrintSuccess("icons rebuilt")
		return nil
	},
}

func init() {
	iconsRebuildCmd.Flags().BoolVar(&rebuildAll, "all", false, "Rebuild every icon, not only missing ones")
	iconsCmd.AddCommand(iconsRebuildCmd)
}
