package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: passing
token: tok-pass
vectors:
  a: [1, 2]
  b: [3, 4]
steps:
  - op: add
    a: a
    b: b
    expect: [4, 6]
`

const failingScenario = `name: failing
token: tok-fail
vectors:
  a: [1, 2]
steps:
  - op: format
    a: a
    expect_text: "[9, 9]"
`

func writeScenarioFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestScenarioCommandSingleFile(t *testing.T) {
	path := writeScenarioFile(t, t.TempDir(), "passing.yaml", passingScenario)

	out, _, err := executeCommand(t, "scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  passing (token tok-pass)")
}

func TestScenarioCommandDirectory(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "a_passing.yaml", passingScenario)
	writeScenarioFile(t, dir, "b_failing.yaml", failingScenario)

	out, _, err := executeCommand(t, "scenario", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "PASS  passing")
	assert.Contains(t, out, "FAIL  failing")
	assert.Contains(t, out, "step 1")
}

func TestScenarioCommandJSON(t *testing.T) {
	path := writeScenarioFile(t, t.TempDir(), "passing.yaml", passingScenario)

	out, _, err := executeCommand(t, "--format", "json", "scenario", path)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   []ScenarioReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.True(t, resp.Data[0].Pass)
	assert.Equal(t, "tok-pass", resp.Data[0].Token)
	require.Len(t, resp.Data[0].Trace, 1)
	assert.Equal(t, "[4, 6]", resp.Data[0].Trace[0].Result)
}

func TestScenarioCommandMissingPath(t *testing.T) {
	_, _, err := executeCommand(t, "scenario", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScenarioCommandMalformedFile(t *testing.T) {
	path := writeScenarioFile(t, t.TempDir(), "bad.yaml", "name: x\nsteps:\n  - op: cross\n    a: f\n")

	_, _, err := executeCommand(t, "scenario", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
