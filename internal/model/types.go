/*
PURPOSE:
  Defines the core data structures used throughout jsonl-vet.
  These models represent the outcome of a validation pass.

REQUIREMENTS:
  User-specified:
  - Record which lines failed to parse and why.
  - Track the file path the pass ran against.

  Implementation-discovered:
  - Need JSON tags so the report stays machine-friendly if a structured
    output mode ever lands.

ARCHITECTURE INTEGRATION:
  - Used by: internal/lint, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Line numbers are 1-based, matching editor conventions.

USAGE:
  rep := model.Report{Path: "events.jsonl"}

RELATED FILES:
  - internal/lint/checker.go
  - internal/output/report.go

MAINTENANCE:
  - Update when the pass starts recording new facts per line.
*/

package model

// LineError describes a single line that failed to parse as JSON.
type LineError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Report is the outcome of one validation pass over one file.
type Report struct {
	Path         string      `json:"path"`
	LinesChecked int         `json:"lines_checked"`
	BlankLines   int         `json:"blank_lines"`
	Errors       []LineError `json:"errors,omitempty"`
}

// Valid reports whether the pass found no malformed lines.
// It starts true for an empty report and can only be flipped by
// appending an error; there is no way back.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}
