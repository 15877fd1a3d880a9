package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at release time via
// -ldflags "-X github.com/daryltucker/jsonl-vet/internal/cli.version=..."
var version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the jsonl-vet version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jsonl-vet %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
