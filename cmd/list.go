package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"runctl/internal/registry"
	_ "runctl/internal/selftest" // registers the built-in suites
	"runctl/pkg/harness"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered test suites and cases",
		Long: `Prints the suite/case directory in execution order, marking disabled
cases. Any printed name is a valid --filter argument for 'runctl run'.`,
		Run: func(cmd *cobra.Command, args []string) {
			reporter := harness.NewReporter(os.Stdout, false)
			reporter.Listing(registry.Suites())
		},
	}
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
