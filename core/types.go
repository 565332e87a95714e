// File: types.go
// Role: the central Graph value, its id types, and the relation-pair
//       record edges are indexed by.
//
// Graph is an immutable value: every field is a persist.* structure (itself
// structurally shared across updates) or an opaque scalar. No method on
// Graph ever mutates a field in place; mutators build and return a new
// *Graph that shares untouched substructure with the receiver.

package core

import "github.com/relaxis/digraph/persist"

// NodeId and EdgeId are opaque, totally-ordered identifiers drawn from a
// per-graph id sequence. The zero values are not reserved; whether they
// denote a live node/edge depends entirely on graph membership.
type NodeId int64

// EdgeId is the edge analogue of NodeId.
type EdgeId int64

// Label identifies a relation or an attribute key. The two domains share a
// type because a node attribute key must never equal a known relation
// label (§3), and that rule is enforced by direct equality.
type Label = any

// AttrKey is an attribute key on a node or edge. It shares Label's type for
// the same reason.
type AttrKey = any

// AttrValue is an attribute value, or — when stored under a relation-
// labeled key on an edge — the NodeId of that edge's endpoint under that
// relation. Because AttrValue participates in reverse-index keys, its
// dynamic type must be comparable, exactly as for a native Go map key.
type AttrValue = any

// RelationPair is an unordered pair of opposite relation labels, recorded
// verbatim (in the order the edge was built with) against every edge.
type RelationPair struct {
	R1, R2 Label
}

// Has reports whether label is one side of this pair.
func (p RelationPair) Has(label Label) bool {
	return p.R1 == label || p.R2 == label
}

// Other returns the member of the pair that is not label, and whether
// label was indeed one of the two.
func (p RelationPair) Other(label Label) (Label, bool) {
	switch {
	case p.R1 == label:
		return p.R2, true
	case p.R2 == label:
		return p.R1, true
	default:
		return nil, false
	}
}

// Graph is the persistent, attributed, relation-typed directed graph value.
// The zero Graph is not valid; construct one with New.
type Graph struct {
	nodes     persist.Set[NodeId]
	nodeAttrs persist.AttrMap[NodeId, AttrKey, AttrValue]

	// edgeAttrs holds both user attributes and, under the two relation-
	// labeled keys of edgeRelations[id], the endpoint NodeIds (boxed as
	// AttrValue).
	edgeAttrs     persist.AttrMap[EdgeId, AttrKey, AttrValue]
	edgeRelations persist.Map[EdgeId, RelationPair]

	relations persist.Bijection[Label, Label]

	nodeSeq IdSeq[NodeId]
	edgeSeq IdSeq[EdgeId]

	constraint ConstraintFunc

	meta any
}

// New returns an empty Graph: no nodes, no edges, no relations, the
// identity constraint, and the default even/odd id sequences.
//
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes:         persist.EmptySet[NodeId](),
		nodeAttrs:     persist.EmptyAttrMap[NodeId, AttrKey, AttrValue](),
		edgeAttrs:     persist.EmptyAttrMap[EdgeId, AttrKey, AttrValue](),
		edgeRelations: persist.Empty[EdgeId, RelationPair](),
		relations:     persist.EmptyBijection[Label, Label](),
		nodeSeq:       defaultNodeSeq(),
		edgeSeq:       defaultEdgeSeq(),
		constraint:    IdentityConstraint,
		meta:          nil,
	}
}

// clone returns a shallow copy of g; callers mutate exactly the fields they
// touch on the result, leaving g itself untouched. Every field is a cheap,
// structurally-shared persist value or a scalar, so this is O(1).
func (g *Graph) clone() *Graph {
	cp := *g
	return &cp
}

// HasNode reports whether id is a live node of g. O(log32 n).
func (g *Graph) HasNode(id NodeId) bool { return g.nodes.Contains(id) }

// HasEdge reports whether id is a live edge of g. O(log32 n).
func (g *Graph) HasEdge(id EdgeId) bool { return g.edgeRelations.Has(id) }

// NodeCount returns the number of live nodes. O(1).
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of live edges. O(1).
func (g *Graph) EdgeCount() int { return g.edgeRelations.Len() }

// Meta returns the graph's opaque metadata value.
func (g *Graph) Meta() any { return g.meta }

// WithMeta returns a new Graph identical to g but carrying meta. Metadata
// never participates in equality or mutation semantics.
func (g *Graph) WithMeta(meta any) *Graph {
	out := g.clone()
	out.meta = meta
	return out
}

// isRelationLabel reports whether label is known to the graph's relation
// bijection, on either side of any pair.
func (g *Graph) isRelationLabel(label Label) bool {
	if _, ok := g.relations.Get(label); ok {
		return true
	}
	_, ok := g.relations.InverseGet(label)
	return ok
}

// Opposite returns the relation paired with label, if label is known.
func (g *Graph) Opposite(label Label) (Label, bool) {
	if v, ok := g.relations.Get(label); ok {
		return v, true
	}
	return g.relations.InverseGet(label)
}

// RelatedIn reports whether r2 is r1's opposite.
func (g *Graph) RelatedIn(r1, r2 Label) bool {
	opp, ok := g.Opposite(r1)
	return ok && opp == r2
}
