package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/internal/workload"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestSelfTestCommand(t *testing.T) {
	out, err := execute(t, "selftest")
	require.NoError(t, err)
	assert.Contains(t, out, "vector-dot: 32\n")
	assert.Contains(t, out, "vector-cross: [-3, 6, -3]\n")
	assert.Contains(t, out, "Test completed")
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	doc := `
jobs:
  - name: ok
    op: add
    left:  {vector: [1, 2]}
    right: {vector: [3, 4]}
  - name: wrong
    op: dot
    left:  {vector: [1, 2]}
    right: {vector: [3, 4]}
    expect: {scalar: 0}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := execute(t, "run", path)
	require.ErrorIs(t, err, workload.ErrExpectation)
	assert.Contains(t, out, "ok: [4, 6]\n")
	assert.Contains(t, out, "wrong: 11\n")
}

func TestRunCommand_BadArgs(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogLevelFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "selftest"})
	require.Error(t, cmd.Execute())
}
