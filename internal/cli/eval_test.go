package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amercer/veclab/internal/vector"
)

func TestEvalAdd(t *testing.T) {
	out, _, err := executeCommand(t, "eval", "[1, 2, 3] + [4, 5, 6]")
	require.NoError(t, err)
	assert.Equal(t, "[5, 7, 9]\n", out)
}

func TestEvalHadamardThenAdd(t *testing.T) {
	out, _, err := executeCommand(t, "eval", "[1, 2, 3] .* [4, 5, 6] + [1, 1, 1]")
	require.NoError(t, err)
	assert.Equal(t, "[5, 11, 19]\n", out)
}

func TestEvalSizeMismatchExitsOne(t *testing.T) {
	out, _, err := executeCommand(t, "eval", "[1, 2, 3] + [1, 2, 3, 4]")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "SIZE_MISMATCH")
}

func TestEvalBadExpressionExitsTwo(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"not a literal", "1 + 2"},
		{"unclosed", "[1, 2"},
		{"trailing operator", "[1] +"},
		{"unknown operator", "[1] x [2]"},
		{"empty", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, "eval", tt.expr)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestEvalJSONOutput(t *testing.T) {
	out, _, err := executeCommand(t, "--format", "json", "eval", "[1, 2] + [3, 4]")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "[4, 6]", resp.Data)
}

func TestEvalJSONError(t *testing.T) {
	out, _, err := executeCommand(t, "--format", "json", "eval", "[1] + [1, 2]")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SIZE_MISMATCH", resp.Error.Code)
}

func TestEvalExprLeftAssociative(t *testing.T) {
	// ([2] + [3]) .* [4] = [20], not [2] + ([3] .* [4]) = [14].
	v, err := evalExpr("[2] + [3] .* [4]")
	require.NoError(t, err)
	assert.True(t, v.Equal(vector.Of(20.0)))
}
