package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeed_Deterministic(t *testing.T) {
	require.Equal(t, Seed("bench-worst-case"), Seed("bench-worst-case"))
	require.NotEqual(t, Seed("a"), Seed("b"))
}

func TestSeed_KnownValue(t *testing.T) {
	// xxHash64 of the empty string, fixed by the algorithm.
	require.Equal(t, uint64(0xef46db3751d8e999), Seed(""))
}
