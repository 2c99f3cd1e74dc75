package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7GeneratorProducesUniqueTokens(t *testing.T) {
	gen := UUIDv7Generator{}

	a := gen.Generate()
	b := gen.Generate()

	require.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	// Version nibble sits at position 14 in the hyphenated form.
	assert.Equal(t, byte('7'), a[14])
}

func TestFixedGeneratorReturnsTokensInOrder(t *testing.T) {
	gen := NewFixedGenerator("t1", "t2")

	assert.Equal(t, "t1", gen.Generate())
	assert.Equal(t, "t2", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
