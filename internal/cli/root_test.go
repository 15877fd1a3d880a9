package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/jsonl-vet/internal/lint"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func tempJSONL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootValidFile(t *testing.T) {
	path := tempJSONL(t, "{\"a\":1}\n{\"b\":2}\n")
	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("[OK] %s looks like valid JSONL\n", path), out)
}

func TestRootInvalidFile(t *testing.T) {
	path := tempJSONL(t, "{\"a\":1}\n{bad json}\n")
	out, err := execute(t, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lint.ErrInvalid))
	assert.True(t, strings.HasPrefix(out, fmt.Sprintf("[ERROR] %s:2 invalid JSON: ", path)))
	assert.NotContains(t, out, "[OK]")
}

func TestRootMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.jsonl")
	out, err := execute(t, path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, lint.ErrInvalid))
	assert.NotContains(t, out, "[OK]")
	assert.NotContains(t, out, "[ERROR]")
}

func TestRootRequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)

	_, err = execute(t, "a.jsonl", "b.jsonl")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "jsonl-vet "))
}
