package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relaxis/digraph/core"
)

func TestNodesWhere_RelationTraversalBothDirections(t *testing.T) {
	g := core.New().AddRelation("parent", "child")
	g, a, _ := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})
	g, b, _ := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "b"})
	g, _, err := g.AddEdge(a.Id(), b.Id(), "parent", "child", nil)
	require.NoError(t, err)

	parents, err := core.NodesWhere(g, core.Query{"child": core.NewNodeView(g, b.Id())})
	require.NoError(t, err)
	require.Len(t, parents, 1)
	require.Equal(t, a.Id(), parents[0].Id())

	children, err := core.NodesWhere(g, core.Query{"parent": core.NewNodeView(g, a.Id())})
	require.NoError(t, err)
	require.Len(t, children, 1)
	require.Equal(t, b.Id(), children[0].Id())
}

func TestNodesWhere_AttributeIntersection(t *testing.T) {
	g := core.New()
	g, a, _ := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "a", "kind": "x"})
	g, _, _ = g.AddNode(map[core.AttrKey]core.AttrValue{"name": "b", "kind": "x"})

	result, err := core.NodesWhere(g, core.Query{"name": "a", "kind": "x"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, a.Id(), result[0].Id())
}

func TestNodesWhere_UnionOverValueSlice(t *testing.T) {
	g := core.New()
	g, a, _ := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})
	g, b, _ := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "b"})
	g, _, _ = g.AddNode(map[core.AttrKey]core.AttrValue{"name": "c"})

	result, err := core.NodesWhere(g, core.Query{"name": []any{"a", "b"}})
	require.NoError(t, err)
	ids := []core.NodeId{result[0].Id(), result[1].Id()}
	require.ElementsMatch(t, []core.NodeId{a.Id(), b.Id()}, ids)
}

func TestNodesWhere_NilValueMatchesNothing(t *testing.T) {
	g := core.New()
	g, _, _ = g.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})

	result, err := core.NodesWhere(g, core.Query{"name": nil})
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestNodesWhere_InvalidQueryValue(t *testing.T) {
	g := core.New().AddRelation("parent", "child")
	g, _, _ = g.AddNode(nil)

	_, err := core.NodesWhere(g, core.Query{"parent": "not-a-view"})
	require.ErrorIs(t, err, core.ErrInvalidQueryValue)
}

func TestEdgesWhere_IncidentToNode(t *testing.T) {
	g := core.New().AddRelation("parent", "child")
	g, a, _ := g.AddNode(nil)
	g, b, _ := g.AddNode(nil)
	g, e, _ := g.AddEdge(a.Id(), b.Id(), "parent", "child", nil)

	result, err := core.EdgesWhere(g, core.Query{"parent": core.NewNodeView(g, a.Id())})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, e.Id(), result[0].Id())
}

func TestNodes_EmptyQueryReturnsAll(t *testing.T) {
	g := core.New()
	g, _, _ = g.AddNode(nil)
	g, _, _ = g.AddNode(nil)

	result, err := core.NodesWhere(g, core.Query{})
	require.NoError(t, err)
	require.Len(t, result, 2)
}
