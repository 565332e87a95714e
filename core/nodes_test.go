package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relaxis/digraph/core"
)

func TestAddNode_AssignsEvenIds(t *testing.T) {
	g := core.New()
	g, a, err := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})
	require.NoError(t, err)
	require.Equal(t, core.NodeId(0), a.Id())

	g, b, err := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "b"})
	require.NoError(t, err)
	require.Equal(t, core.NodeId(2), b.Id())

	name, ok := core.NewNodeView(g, a.Id()).Get("name")
	require.True(t, ok)
	require.Equal(t, "a", name)
}

func TestAddNode_RejectsRelationLabeledAttr(t *testing.T) {
	g := core.New().AddRelation("parent", "child")
	_, _, err := g.AddNode(map[core.AttrKey]core.AttrValue{"parent": "x"})
	require.ErrorIs(t, err, core.ErrAttrIsRelation)
}

func TestRemoveNode_CascadesIncidentEdges(t *testing.T) {
	g := core.New().AddRelation("parent", "child")
	g, a, _ := g.AddNode(nil)
	g, b, _ := g.AddNode(nil)
	g, e, err := g.AddEdge(a.Id(), b.Id(), "parent", "child", nil)
	require.NoError(t, err)
	require.True(t, g.HasEdge(e.Id()))

	g, err = g.RemoveNode(a)
	require.NoError(t, err)
	require.False(t, g.HasNode(a.Id()))
	require.False(t, g.HasEdge(e.Id()))
	require.True(t, g.HasNode(b.Id()))
}

func TestRemoveNode_ThenAddReusesId(t *testing.T) {
	g := core.New()
	g, a, _ := g.AddNode(nil)
	g, err := g.RemoveNode(a)
	require.NoError(t, err)

	g, b, err := g.AddNode(nil)
	require.NoError(t, err)
	require.Equal(t, a.Id(), b.Id())
}

func TestAssocNode_MergesAttributes(t *testing.T) {
	g := core.New()
	g, a, _ := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "a"})
	g, err := g.AssocNode(a, map[core.AttrKey]core.AttrValue{"age": 3})
	require.NoError(t, err)

	name, ok := core.NewNodeView(g, a.Id()).Get("name")
	require.True(t, ok)
	require.Equal(t, "a", name)
	age, ok := core.NewNodeView(g, a.Id()).Get("age")
	require.True(t, ok)
	require.Equal(t, 3, age)
}

func TestDissocNode_RemovesOnlyNamedKeys(t *testing.T) {
	g := core.New()
	g, a, _ := g.AddNode(map[core.AttrKey]core.AttrValue{"name": "a", "age": 3})
	g, err := g.DissocNode(a, "age")
	require.NoError(t, err)

	_, ok := core.NewNodeView(g, a.Id()).Get("age")
	require.False(t, ok)
	name, ok := core.NewNodeView(g, a.Id()).Get("name")
	require.True(t, ok)
	require.Equal(t, "a", name)
}
