/*
PURPOSE:
  The validation core: scans a file line by line and checks that every
  non-blank line is a single well-formed JSON value.

REQUIREMENTS:
  User-specified:
  - Report every malformed line, not just the first (no fail-fast).
  - Blank lines are valid and silent.
  - Any top-level JSON value counts: object, array, string, number,
    bool, null.

  Implementation-discovered:
  - A line holding two values ("{} {}") is not JSON Lines; the decoder
    must reject trailing data, not just a bad prefix.
  - bufio.Scanner needs a grown buffer for long single-line records.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/model, internal/output

ERROR HANDLING:
  - Per-line parse failures are recorded and reported, then the scan
    continues.
  - Open/read failures are fatal and returned to the caller untouched;
    the caller's top-level error path owns them.

IMPLEMENTATION RULES:
  - Iterate lines in order, numbering from 1.
  - Trim whitespace before the blank check and before parsing.
  - Emit each diagnostic immediately, in line order.

USAGE:
  c := lint.New(output.NewReporter(os.Stdout))
  rep, err := c.Check("events.jsonl")

RELATED FILES:
  - internal/output/report.go

MAINTENANCE:
  - Update maxLineSize if real-world records outgrow it.
*/

package lint

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/daryltucker/jsonl-vet/internal/model"
	"github.com/daryltucker/jsonl-vet/internal/output"
)

// ErrInvalid is the verdict for a file with at least one malformed
// line. It signals exit code 1 without a generic error print; the
// per-line diagnostics are the user-facing message.
var ErrInvalid = errors.New("input is not valid JSONL")

// maxLineSize bounds a single line. JSONL records are routinely large
// (embedded payloads, base64 blobs) so the default 64K token limit is
// far too small.
const maxLineSize = 16 * 1024 * 1024

// Checker validates files as JSON Lines.
type Checker struct {
	reporter *output.Reporter
}

// New creates a Checker emitting diagnostics through r.
func New(r *output.Reporter) *Checker {
	return &Checker{reporter: r}
}

// Check opens path and scans it line by line. Every malformed line is
// reported through the Reporter as it is found; the returned Report
// carries the accumulated outcome. The error return is reserved for
// environmental failures (unreadable file, mid-scan read error) and is
// nil even when the file is invalid.
func (c *Checker) Check(path string) (model.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Report{}, err
	}
	defer f.Close()

	return c.scan(path, f)
}

func (c *Checker) scan(path string, r io.Reader) (model.Report, error) {
	rep := model.Report{Path: path}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			rep.BlankLines++
			continue
		}

		rep.LinesChecked++
		if err := parseValue(line); err != nil {
			lineErr := model.LineError{Line: n, Message: err.Error()}
			rep.Errors = append(rep.Errors, lineErr)
			c.reporter.Error(path, lineErr)
		}
	}
	if err := sc.Err(); err != nil {
		// Diagnostics printed so far stand; the verdict does not.
		return rep, fmt.Errorf("failed to read %s: %w", path, err)
	}

	output.Logger.Debug("scanned file",
		"path", path,
		"lines_checked", rep.LinesChecked,
		"blank_lines", rep.BlankLines,
		"errors", len(rep.Errors))

	if rep.Valid() {
		c.reporter.OK(path)
	}
	return rep, nil
}

// parseValue checks that s is exactly one JSON value, nothing more.
func parseValue(s string) error {
	dec := json.NewDecoder(strings.NewReader(s))
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after top-level JSON value")
	}
	return nil
}
