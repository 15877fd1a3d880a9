/*
PURPOSE:
  Writes the validator's console output: one diagnostic per malformed
  line and a single success summary.

REQUIREMENTS:
  User-specified:
  - Diagnostics in the form "[ERROR] <path>:<line> invalid JSON: <msg>".
  - Success summary "[OK] <path> looks like valid JSONL", printed only
    when zero diagnostics were emitted.

  Implementation-discovered:
  - Output goes through an injected io.Writer so tests can assert the
    exact bytes.

ARCHITECTURE INTEGRATION:
  - Called by: internal/lint
  - Consumes: internal/model.LineError

ERROR HANDLING:
  - Write failures to the console are ignored; there is nowhere better
    to report them.

IMPLEMENTATION RULES:
  - One line per call, newline-terminated, no buffering.
  - Never reorder: callers emit diagnostics in file order.

USAGE:
  r := output.NewReporter(os.Stdout)
  r.Error(path, lineErr)
  r.OK(path)

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update if a structured (JSON) report mode is ever added.
*/

package output

import (
	"fmt"
	"io"

	"github.com/daryltucker/jsonl-vet/internal/model"
)

// Reporter emits human-readable validation results to a writer.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Error emits one diagnostic for a malformed line.
func (r *Reporter) Error(path string, e model.LineError) {
	fmt.Fprintf(r.w, "[ERROR] %s:%d invalid JSON: %s\n", path, e.Line, e.Message)
}

// OK emits the success summary for a file with no malformed lines.
func (r *Reporter) OK(path string) {
	fmt.Fprintf(r.w, "[OK] %s looks like valid JSONL\n", path)
}
