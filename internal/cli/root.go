/*
PURPOSE:
  Defines the root Cobra command for jsonl-vet.
  The root command IS the validator: jsonl-vet <file>.

REQUIREMENTS:
  User-specified:
  - Exactly one positional argument, the file path.
  - No flags, no options, no environment variables.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - An invalid file must exit 1 without cobra printing usage or a
    second error line; lint.ErrInvalid carries that verdict out.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/jsonl-vet/main.go
  - Calls: internal/lint, internal/output

ERROR HANDLING:
  - Returns errors to main.go for exit code handling. SilenceUsage and
    SilenceErrors are set because main owns error printing.

IMPLEMENTATION RULES:
  - Keep the argument surface frozen: one path, nothing else.

USAGE:
  jsonl-vet events.jsonl

RELATED FILES:
  - cmd/jsonl-vet/main.go
  - internal/lint/checker.go

MAINTENANCE:
  - Update if an output-format mode is ever added.
*/

package cli

import (
	"github.com/daryltucker/jsonl-vet/internal/lint"
	"github.com/daryltucker/jsonl-vet/internal/output"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsonl-vet <file>",
	Short: "Validate that a file is well-formed JSON Lines",
	Long: `Checks that every non-blank line of a file parses as a single JSON
value (object, array, string, number, boolean or null). Blank lines are
ignored. Each malformed line is reported with its 1-based line number;
the scan always covers the whole file.

Exit status is 0 when every non-blank line parsed, 1 when at least one
line failed or the file could not be read.`,
	Example: `  # Validate an export
  jsonl-vet events.jsonl

  # Use in a pipeline gate
  jsonl-vet batch.jsonl && upload batch.jsonl`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := lint.New(output.NewReporter(cmd.OutOrStdout()))

		rep, err := checker.Check(args[0])
		if err != nil {
			return err
		}
		if !rep.Valid() {
			return lint.ErrInvalid
		}
		return nil
	},
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
