package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relaxis/digraph/core"
)

func TestEqual_SameContentDifferentLineage(t *testing.T) {
	g1 := core.New().AddRelation("parent", "child")
	g1, a1, _ := g1.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})
	g1, b1, _ := g1.AddNode(map[core.AttrKey]core.AttrValue{"name": "b"})
	g1, _, _ = g1.AddEdge(a1.Id(), b1.Id(), "parent", "child", nil)

	g2 := core.New().AddRelation("parent", "child").AddConstraint(func(kind core.ElementKind, action core.Action, oldView, newView any, oldGraph, newGraph *core.Graph) *core.Graph {
		return newGraph
	})
	g2, a2, _ := g2.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})
	g2, b2, _ := g2.AddNode(map[core.AttrKey]core.AttrValue{"name": "b"})
	g2, _, _ = g2.AddEdge(a2.Id(), b2.Id(), "parent", "child", nil)

	require.True(t, g1.Equal(g2))
}

func TestEqual_DiffersOnAttribute(t *testing.T) {
	g1 := core.New()
	g1, _, _ = g1.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})

	g2 := core.New()
	g2, _, _ = g2.AddNode(map[core.AttrKey]core.AttrValue{"name": "b"})

	require.False(t, g1.Equal(g2))
}

func TestRender_SortsByIdAndStringSummarizes(t *testing.T) {
	g := core.New()
	g, _, _ = g.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})
	g, _, _ = g.AddNode(map[core.AttrKey]core.AttrValue{"name": "b"})

	rec := g.Render()
	require.Len(t, rec.Nodes, 2)
	require.Less(t, rec.Nodes[0].Id, rec.Nodes[1].Id)
	require.Contains(t, g.String(), "nodes=2")
}
