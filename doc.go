// Package digraph implements an immutable, attributed, relation-typed
// directed graph with multi-index query, bidirectional relation
// discipline, and a composable constraint pipeline. Every mutating
// operation returns a new graph value that shares structure with its
// predecessor; the predecessor remains valid and unchanged.
//
// The package is a thin factory and re-export surface over three layered
// subpackages:
//
//	persist/ — the HAMT, set, bijection, surjection and attr-map primitives
//	core/    — the Graph value itself: nodes, edges, relations, queries
//	ops/     — composite operations built from core's public surface
//
// Construct a graph with New, registering its relation pairs up front;
// WithConstraints composes constraints onto it:
//
//	g := digraph.New(
//	    digraph.Relation{R1: "parent", R2: "child"},
//	)
//	g, a, _ := g.AddNode(digraph.Attrs{"name": "a"})
//	g, b, _ := g.AddNode(digraph.Attrs{"name": "b"})
//	g, _, _ = g.AddEdge(a.Id(), b.Id(), "parent", "child", nil)
package digraph

import "github.com/relaxis/digraph/core"

// Graph is the persistent directed graph value.
type Graph = core.Graph

// NodeId, EdgeId, Label, AttrKey and AttrValue re-export core's id and
// attribute types for callers who don't want to import core directly.
type (
	NodeId    = core.NodeId
	EdgeId    = core.EdgeId
	Label     = core.Label
	AttrKey   = core.AttrKey
	AttrValue = core.AttrValue
)

// Attrs is a convenience alias for the attribute maps AddNode, AddEdge,
// AssocNode and AssocEdge accept.
type Attrs = map[core.AttrKey]core.AttrValue

// NodeView and EdgeView re-export core's view types.
type (
	NodeView = core.NodeView
	EdgeView = core.EdgeView
)

// Query re-exports core.Query, the map shape Nodes/Edges filtering accepts.
type Query = core.Query

// ConstraintFunc, ElementKind and Action re-export the constraint pipeline
// types.
type (
	ConstraintFunc = core.ConstraintFunc
	ElementKind    = core.ElementKind
	Action         = core.Action
)

const (
	NodeKind = core.NodeKind
	EdgeKind = core.EdgeKind

	AddAction    = core.AddAction
	RemoveAction = core.RemoveAction
)

// Relation is one (label, opposite) pair to register on construction.
type Relation struct {
	R1, R2 Label
}

// New builds an empty Graph and registers every relation in order (each via
// AddRelation). It takes no constraints: the returned Graph runs only the
// identity constraint, and WithConstraints composes further ones onto it.
func New(relations ...Relation) *Graph {
	g := core.New()
	for _, r := range relations {
		g = g.AddRelation(r.R1, r.R2)
	}
	return g
}

// WithConstraints returns a copy of g with every constraint in fns
// composed in order onto g's existing pipeline.
func WithConstraints(g *Graph, fns ...ConstraintFunc) *Graph {
	for _, fn := range fns {
		g = g.AddConstraint(fn)
	}
	return g
}

// Nodes returns every node view of g.
func Nodes(g *Graph) []NodeView { return core.Nodes(g) }

// NodesWhere resolves a node query against g.
func NodesWhere(g *Graph, q Query) ([]NodeView, error) { return core.NodesWhere(g, q) }

// Edges returns every edge view of g.
func Edges(g *Graph) []EdgeView { return core.Edges(g) }

// EdgesWhere resolves an edge query against g.
func EdgesWhere(g *Graph, q Query) ([]EdgeView, error) { return core.EdgesWhere(g, q) }
