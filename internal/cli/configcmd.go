package cli

import (
	"github.com/spf13/cobra"
)

// configCmd groups configuration inspection commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

// configShowCmd prints the effective options after defaults and overrides.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective options as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		return outputJSON(rt.opts)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
