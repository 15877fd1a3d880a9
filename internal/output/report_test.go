package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daryltucker/jsonl-vet/internal/model"
)

func TestReporterError(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewReporter(buf)

	r.Error("data/events.jsonl", model.LineError{Line: 7, Message: "invalid character 'x'"})

	assert.Equal(t, "[ERROR] data/events.jsonl:7 invalid JSON: invalid character 'x'\n", buf.String())
}

func TestReporterOK(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewReporter(buf)

	r.OK("data/events.jsonl")

	assert.Equal(t, "[OK] data/events.jsonl looks like valid JSONL\n", buf.String())
}

func TestReporterPreservesCallOrder(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewReporter(buf)

	r.Error("f", model.LineError{Line: 1, Message: "a"})
	r.Error("f", model.LineError{Line: 3, Message: "b"})

	assert.Equal(t, "[ERROR] f:1 invalid JSON: a\n[ERROR] f:3 invalid JSON: b\n", buf.String())
}
