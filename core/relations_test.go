package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relaxis/digraph/core"
)

func TestAddRelation_OppositeIsQueryableBothWays(t *testing.T) {
	g := core.New().AddRelation("parent", "child")

	opp, ok := g.Opposite("parent")
	require.True(t, ok)
	require.Equal(t, "child", opp)

	opp, ok = g.Opposite("child")
	require.True(t, ok)
	require.Equal(t, "parent", opp)
}

func TestRemoveRelation_FailsWhileInUse(t *testing.T) {
	g := core.New().AddRelation("parent", "child")
	g, a, _ := g.AddNode(nil)
	g, b, _ := g.AddNode(nil)
	g, _, _ = g.AddEdge(a.Id(), b.Id(), "parent", "child", nil)

	_, err := g.RemoveRelation("parent", "child")
	require.ErrorIs(t, err, core.ErrRelationInUse)
}

func TestRemoveRelation_SucceedsOnceUnused(t *testing.T) {
	g := core.New().AddRelation("parent", "child")
	g, err := g.RemoveRelation("parent", "child")
	require.NoError(t, err)

	_, ok := g.Opposite("parent")
	require.False(t, ok)
}
