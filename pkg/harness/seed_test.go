package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunSeedLengthAndAlphabet(t *testing.T) {
	for _, length := range []int{1, 16, 64} {
		seed, err := GenerateRunSeed(length)
		require.NoError(t, err)
		require.Len(t, seed, length)
		for i := 0; i < len(seed); i++ {
			ch := seed[i]
			assert.True(t, (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z'),
				"seed byte %d out of alphabet: %q", i, ch)
		}
	}
}

func TestGenerateRunSeedRejectsNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1, -100} {
		seed, err := GenerateRunSeed(length)
		assert.Error(t, err)
		assert.Empty(t, seed)
	}
}
