// Package cli wires the projswitch engine to its cobra commands.
package cli

import (
	"github.com/spf13/cobra"
)

// version is the build version injected via SetVersion; it doubles as the
// workflow version in the environment fingerprint.
var version = "dev"

// rootCmd is the root command for projswitch.
var rootCmd = &cobra.Command{
	Use:     "projswitch",
	Version: version,
	Short:   "Project switcher backend for desktop launchers",
	Long: `projswitch turns editor workspace definitions into launcher-ready entries.

It reads projects.jsonc and config.yaml, merges in auto-discovered git
repositories, resolves per-entry icons, and emits the result as launcher
feedback JSON, rebuilding rendered icons only when the environment,
version, or theme actually changed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the build version reported by --version and
// embedded in the fingerprint.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(configCmd)
}
