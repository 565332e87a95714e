package persist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relaxis/digraph/persist"
)

func TestMap_AssocGetDissoc(t *testing.T) {
	m := persist.Empty[string, int]()
	require.Equal(t, 0, m.Len())

	m1 := m.Assoc("a", 1)
	require.Equal(t, 1, m1.Len())
	require.Equal(t, 0, m.Len(), "original map must stay empty")

	v, ok := m1.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("a")
	require.False(t, ok, "predecessor must not see the later Assoc")

	m2 := m1.Dissoc("a")
	require.Equal(t, 0, m2.Len())
	require.Equal(t, 1, m1.Len(), "Dissoc must not mutate its receiver")
}

func TestMap_AssocReplacesExistingKey(t *testing.T) {
	m := persist.Empty[string, int]().Assoc("a", 1).Assoc("a", 2)
	require.Equal(t, 1, m.Len())
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestMap_ManyKeysSurviveHashCollisionBuckets(t *testing.T) {
	m := persist.Empty[int, int]()
	const n = 5000
	for i := 0; i < n; i++ {
		m = m.Assoc(i, i*i)
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		v, ok := m.Get(i)
		require.True(t, ok, "missing key %d", i)
		require.Equal(t, i*i, v)
	}

	seen := map[int]bool{}
	m.Range(func(k, v int) bool {
		require.Equal(t, k*k, v)
		seen[k] = true
		return true
	})
	require.Len(t, seen, n)
}

func TestMap_DissocAbsentIsNoop(t *testing.T) {
	m := persist.Empty[string, int]().Assoc("a", 1)
	m2 := m.Dissoc("missing")
	require.Equal(t, m.Len(), m2.Len())
	v, ok := m2.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestMap_RangeStopsEarly(t *testing.T) {
	m := persist.Empty[int, int]()
	for i := 0; i < 10; i++ {
		m = m.Assoc(i, i)
	}
	count := 0
	m.Range(func(int, int) bool {
		count++
		return count < 3
	})
	require.Equal(t, 3, count)
}

func TestMap_StructuralSharingAcrossUpdates(t *testing.T) {
	base := persist.Empty[string, int]()
	for i := 0; i < 200; i++ {
		base = base.Assoc(fmt.Sprintf("k%d", i), i)
	}
	branchA := base.Assoc("k0", -1)
	branchB := base.Assoc("k1", -2)

	va, _ := branchA.Get("k0")
	require.Equal(t, -1, va)
	vb, _ := branchB.Get("k1")
	require.Equal(t, -2, vb)

	// base is untouched by either branch.
	v0, _ := base.Get("k0")
	v1, _ := base.Get("k1")
	require.Equal(t, 0, v0)
	require.Equal(t, 1, v1)
}
