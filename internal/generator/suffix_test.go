package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanoIDSuffix(t *testing.T) {
	src := NanoIDSuffix()

	for _, length := range []int{1, 5, 12} {
		s, err := src.Suffix(length)
		require.NoError(t, err)
		assert.Len(t, s, length)
		for _, c := range s {
			assert.True(t, strings.ContainsRune(SuffixAlphabet, c), "character %q outside suffix alphabet", c)
		}
	}
}

func TestNanoIDSuffixVaries(t *testing.T) {
	src := NanoIDSuffix()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		s, err := src.Suffix(DefaultSuffixLength)
		require.NoError(t, err)
		seen[s] = struct{}{}
	}
	// 36^5 values; 50 draws colliding down to a handful would mean the
	// source is badly biased.
	assert.Greater(t, len(seen), 45)
}
