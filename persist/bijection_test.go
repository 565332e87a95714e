package persist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relaxis/digraph/persist"
)

func TestBijection_AssocAndInverse(t *testing.T) {
	b := persist.EmptyBijection[string, string]()
	b = b.Assoc("parent", "child")

	v, ok := b.Get("parent")
	require.True(t, ok)
	require.Equal(t, "child", v)

	k, ok := b.InverseGet("child")
	require.True(t, ok)
	require.Equal(t, "parent", k)
}

func TestBijection_AssocEvictsCollidingPairsOnEitherSide(t *testing.T) {
	b := persist.EmptyBijection[string, string]().
		Assoc("parent", "child").
		Assoc("guardian", "ward")

	// Rebinding "parent" to "ward" must evict both the old ("parent","child")
	// pair and the old ("guardian","ward") pair, since "ward" collides.
	b = b.Assoc("parent", "ward")

	require.Equal(t, 1, b.Len())
	_, ok := b.Get("guardian")
	require.False(t, ok)
	_, ok = b.InverseGet("child")
	require.False(t, ok)
	v, ok := b.Get("parent")
	require.True(t, ok)
	require.Equal(t, "ward", v)
}

func TestBijection_DissocKeyAndVal(t *testing.T) {
	b := persist.EmptyBijection[string, string]().Assoc("a", "b")
	b2 := b.DissocKey("a")
	require.Equal(t, 0, b2.Len())

	b3 := b.DissocVal("b")
	require.Equal(t, 0, b3.Len())
	require.Equal(t, 1, b.Len(), "original untouched")
}
