package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRunsAllSections(t *testing.T) {
	out, _, err := executeCommand(t, "demo")
	require.NoError(t, err)

	for _, section := range []string{"--- errors ---", "--- vectors ---", "--- ownership ---", "--- closures ---"} {
		assert.Contains(t, out, section)
	}
}

func TestDemoErrors(t *testing.T) {
	out, _, err := executeCommand(t, "demo", "errors")
	require.NoError(t, err)

	assert.Contains(t, out, `INVALID_ARGUMENT: input "hi"`)
	assert.Contains(t, out, "just right\n")
	assert.Contains(t, out, `OUT_OF_RANGE: input "definitely too long"`)
}

func TestClassifyInput(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantCode string
	}{
		{"too long", "elevenchars", "OUT_OF_RANGE"},
		{"too short", "four", "INVALID_ARGUMENT"},
		{"lower boundary accepted", "five!", ""},
		{"upper boundary accepted", "ten chars!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			echoed, err := classifyInput(tt.in)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.in, echoed)
				return
			}

			require.Error(t, err)
			var ie *InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.wantCode, ie.Code)
			assert.Empty(t, echoed)
		})
	}
}

func TestDemoVectors(t *testing.T) {
	out, _, err := executeCommand(t, "demo", "vectors")
	require.NoError(t, err)

	assert.Contains(t, out, "(f .* g) + f = [0.11")
	assert.Contains(t, out, "g + h failed")
	assert.Contains(t, out, "SIZE_MISMATCH")
}

func TestDemoOwnership(t *testing.T) {
	out, _, err := executeCommand(t, "demo", "ownership")
	require.NoError(t, err)

	assert.Contains(t, out, "drawing square(side=3)")
	assert.Contains(t, out, "took ownership of square(side=4)")
	assert.Contains(t, out, "shared circle(radius=5), use_count: 2")
	assert.Contains(t, out, "shared circle(radius=5), use_count: 3")
	assert.Contains(t, out, "finalizing circle(radius=5)")

	// Two handles gave up their payloads: one consumed, one promoted.
	assert.Equal(t, 2, strings.Count(out, "the ownership has moved away"))

	// The finalizer runs exactly once.
	assert.Equal(t, 1, strings.Count(out, "finalizing circle(radius=5)"))
}

func TestDemoClosures(t *testing.T) {
	out, _, err := executeCommand(t, "demo", "closures")
	require.NoError(t, err)

	assert.Contains(t, out, "Hello, John Doe")
	assert.Contains(t, out, "John Doe got the secret (42)")
	assert.Contains(t, out, "Bye, John Doe")
	// The secret variable is overwritten after the chain is built;
	// the copy taken at capture time must win.
	assert.NotContains(t, out, "(7)")
}

func TestDemoUnknownSection(t *testing.T) {
	_, _, err := executeCommand(t, "demo", "threads")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestShapesDraw(t *testing.T) {
	var s Shape = Square{Side: 2}
	assert.Equal(t, "square(side=2)", s.Draw())

	s = Circle{Radius: 7}
	assert.Equal(t, "circle(radius=7)", s.Draw())
}
