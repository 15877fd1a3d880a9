/*
PURPOSE:
  Entry point for the jsonl-vet binary.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - Exit 0 on a valid file, non-zero otherwise.

  Implementation-discovered:
  - Uses cobra for CLI command management.
  - An invalid-input verdict must exit 1 without a generic "Error:"
    line; the per-line diagnostics were already printed during the scan.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()
  - Depends on: internal/cli, internal/lint (sentinel error only)

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.
  - lint.ErrInvalid is the ordinary "file had bad lines" outcome and is
    not reprinted; anything else (unreadable file, scan failure) gets
    the generic Error: prefix on stderr.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.
  - Do not put business logic here.

USAGE:
  go build -o jsonl-vet ./cmd/jsonl-vet
  ./jsonl-vet <file>

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.

MAINTENANCE:
  - Update when changing the CLI framework or exit-code policy.
*/

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/daryltucker/jsonl-vet/internal/cli"
	"github.com/daryltucker/jsonl-vet/internal/lint"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, lint.ErrInvalid) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
