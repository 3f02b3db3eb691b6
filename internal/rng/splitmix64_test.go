package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tit-go/geomgraph/internal/rng"
)

func TestSplitMix64Deterministic(t *testing.T) {
	a := rng.New(42).Next()
	b := rng.New(42).Next()
	require.Equal(t, a, b)
}

func TestSplitMix64VariesWithSeed(t *testing.T) {
	require.NotEqual(t, rng.New(1).Next(), rng.New(2).Next())
}

func TestHashOrderIndependent(t *testing.T) {
	require.Equal(t, rng.Hash(3, 7), rng.Hash(7, 3))
	require.Equal(t, rng.Hash(1, 2, 3), rng.Hash(3, 1, 2))
}

func TestHashVariesWithInputs(t *testing.T) {
	require.NotEqual(t, rng.Hash(1, 2), rng.Hash(1, 3))
}
