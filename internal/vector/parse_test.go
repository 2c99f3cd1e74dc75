package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Vector[float64]
	}{
		{"basic", "[0.1, 0.2, 0.3]", Of(0.1, 0.2, 0.3)},
		{"no spaces", "[1,2,3]", Of(1.0, 2.0, 3.0)},
		{"extra whitespace", "  [ 1 ,  2 ]  ", Of(1.0, 2.0)},
		{"empty", "[]", Of[float64]()},
		{"negative and exponent", "[-1.5, 2e3]", Of(-1.5, 2000.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloats(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseFloatsBadLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing brackets", "0.1, 0.2"},
		{"unclosed", "[0.1, 0.2"},
		{"not a number", "[0.1, banana]"},
		{"trailing comma", "[1, 2,]"},
		{"bare empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFloats(tt.in)
			require.Error(t, err)

			var de *DimError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, BadLiteral, de.Code)
		})
	}
}

func TestParseFloatsRoundTripsString(t *testing.T) {
	orig := Of(0.1, 0.2, 0.3)
	parsed, err := ParseFloats(orig.String())
	require.NoError(t, err)
	assert.True(t, orig.Equal(parsed))
}
