package cli

import (
	"github.com/spf13/cobra"
)

// cacheCmd groups cache maintenance commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached entries",
}

// cacheClearCmd drops the cached entry list and stored fingerprint.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop cached entries and the stored fingerprint",
	Long: `Delete the cached entry list and the stored environment fingerprint.

The next run rebuilds the catalog and re-renders every icon.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		if err := rt.engine.ClearCache(); err != nil {
			return err
		}

		PrintSuccess("cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
