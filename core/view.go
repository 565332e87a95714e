// File: view.go
// Role: NodeView and EdgeView, the handles query results and constraint
//       callbacks hand back instead of raw ids. A view pairs an id with the
//       graph snapshot it was read from, so Get calls never need the graph
//       threaded through separately and a view from one graph is never
//       silently usable against another.

package core

// NodeView is a node id paired with the graph snapshot it was resolved
// against, plus an optional caller-attached metadata value that never
// participates in view equality. The zero NodeView is not meaningful;
// views are produced by graph operations or NewNodeView.
type NodeView struct {
	graph *Graph
	id    NodeId
	meta  any
}

// Id returns the node id this view refers to.
func (v NodeView) Id() NodeId { return v.id }

// Graph returns the graph snapshot this view was resolved against.
func (v NodeView) Graph() *Graph { return v.graph }

// Exists reports whether this view's id is a live node of its graph.
func (v NodeView) Exists() bool { return v.graph != nil && v.graph.HasNode(v.id) }

// Get returns the value attached to key on this node, if any.
func (v NodeView) Get(key AttrKey) (AttrValue, bool) {
	if v.graph == nil {
		return nil, false
	}
	return v.graph.nodeAttrs.Get(v.id, key)
}

// Meta returns the view's caller-attached metadata, if any was set with
// WithMeta. It is independent of the underlying node's attributes.
func (v NodeView) Meta() any { return v.meta }

// WithMeta returns a copy of v carrying meta. Metadata is not part of
// Equal and is not persisted onto the graph.
func (v NodeView) WithMeta(meta any) NodeView {
	v.meta = meta
	return v
}

// ForeignView reports whether v's id is not a member of g — the receiving
// graph of the operation underway. Membership is checked against g
// directly, not against v's own graph or any lineage relationship between
// the two.
func (v NodeView) ForeignView(g *Graph) bool { return !g.HasNode(v.id) }

// Equal reports structural equality: same graph pointer, same id. Two views
// of the same id taken from different graph snapshots are not equal.
func (v NodeView) Equal(other NodeView) bool {
	return v.graph == other.graph && v.id == other.id
}

// NewNodeView resolves a NodeView for id against g.
func NewNodeView(g *Graph, id NodeId) NodeView { return NodeView{graph: g, id: id} }

// EdgeView is an edge id paired with the graph snapshot it was resolved
// against, plus an optional caller-attached metadata value.
type EdgeView struct {
	graph *Graph
	id    EdgeId
	meta  any
}

// Id returns the edge id this view refers to.
func (v EdgeView) Id() EdgeId { return v.id }

// Graph returns the graph snapshot this view was resolved against.
func (v EdgeView) Graph() *Graph { return v.graph }

// Exists reports whether this view's id is a live edge of its graph.
func (v EdgeView) Exists() bool { return v.graph != nil && v.graph.HasEdge(v.id) }

// Get returns the value attached to key on this edge, if any. key may be a
// relation label, in which case the returned value is the NodeId of the
// endpoint under that relation, boxed as AttrValue.
func (v EdgeView) Get(key AttrKey) (AttrValue, bool) {
	if v.graph == nil {
		return nil, false
	}
	return v.graph.edgeAttrs.Get(v.id, key)
}

// Relations returns the pair of relation labels this edge was built with.
func (v EdgeView) Relations() (RelationPair, bool) {
	if v.graph == nil {
		return RelationPair{}, false
	}
	return v.graph.edgeRelations.Get(v.id)
}

// Endpoint returns the node view reached by following relation label from
// this edge, if label is one of the edge's two relations.
func (v EdgeView) Endpoint(label Label) (NodeView, bool) {
	val, ok := v.Get(label)
	if !ok {
		return NodeView{}, false
	}
	nodeId, ok := val.(NodeId)
	if !ok {
		return NodeView{}, false
	}
	return NewNodeView(v.graph, nodeId), true
}

// Meta returns the view's caller-attached metadata, if any was set with
// WithMeta.
func (v EdgeView) Meta() any { return v.meta }

// WithMeta returns a copy of v carrying meta.
func (v EdgeView) WithMeta(meta any) EdgeView {
	v.meta = meta
	return v
}

// ForeignView reports whether v's id is not a member of g.
func (v EdgeView) ForeignView(g *Graph) bool { return !g.HasEdge(v.id) }

// Equal reports structural equality: same graph pointer, same id.
func (v EdgeView) Equal(other EdgeView) bool {
	return v.graph == other.graph && v.id == other.id
}

// NewEdgeView resolves an EdgeView for id against g.
func NewEdgeView(g *Graph, id EdgeId) EdgeView { return EdgeView{graph: g, id: id} }
