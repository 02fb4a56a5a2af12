package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/projswitch/internal/feedback"
)

// listCmd builds the catalog and emits it as launcher feedback JSON.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Emit all launcher entries",
	Long: `Build the project catalog and write it to stdout as launcher feedback.

Configured definitions come from projects.jsonc; discovered repositories
are merged in when includeDiscoveredRepositories is enabled. An empty
catalog emits a single "no results" entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		entries, err := rt.engine.BuildCatalog(context.Background())
		if err != nil {
			return err
		}

		return feedback.FromEntries(entries).Emit(os.Stdout)
	},
}
