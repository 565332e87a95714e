package persist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relaxis/digraph/persist"
)

func TestSet_AddRemoveContains(t *testing.T) {
	s := persist.EmptySet[int]()
	s1 := s.Add(1).Add(2).Add(3)
	require.Equal(t, 3, s1.Len())
	require.True(t, s1.Contains(2))
	require.False(t, s.Contains(2), "original set unaffected")

	s2 := s1.Remove(2)
	require.False(t, s2.Contains(2))
	require.True(t, s1.Contains(2), "removal must not mutate its receiver")
}

func TestSet_UnionIntersect(t *testing.T) {
	a := persist.SetOf(1, 2, 3)
	b := persist.SetOf(2, 3, 4)

	u := a.Union(b)
	require.ElementsMatch(t, []int{1, 2, 3, 4}, u.ToSlice())

	i := a.Intersect(b)
	require.ElementsMatch(t, []int{2, 3}, i.ToSlice())
}

func TestSet_EmptyIntersectEmptyUnion(t *testing.T) {
	a := persist.EmptySet[string]()
	b := persist.SetOf("x")
	require.Equal(t, 0, a.Intersect(b).Len())
	require.ElementsMatch(t, []string{"x"}, a.Union(b).ToSlice())
}
