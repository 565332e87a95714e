// File: edges.go
// Role: edge lifecycle — add (with its two opposite relation labels), remove,
//       and attribute assoc/dissoc. A relation-labeled key may be
//       re-pointed to a new endpoint via assoc, but the pair of relation
//       labels itself is fixed at creation and may never be altered or
//       dissociated.

package core

// AddEdge allocates a fresh edge id, binds it between from and to under the
// r1/r2 relation pair (r1 must be r2's registered opposite), attaches attrs,
// and runs the Edge/Add constraint. from and to must already be live nodes
// of g; attrs keys must not collide with r1, r2, or any other relation
// label.
func (g *Graph) AddEdge(from, to NodeId, r1, r2 Label, attrs map[AttrKey]AttrValue) (*Graph, EdgeView, error) {
	if !g.nodes.Contains(from) || !g.nodes.Contains(to) {
		return nil, EdgeView{}, ErrEdgeEndpointMissing
	}
	if !g.RelatedIn(r1, r2) {
		return nil, EdgeView{}, ErrEdgeRelationsNotOpposite
	}
	for key := range attrs {
		if key == r1 || key == r2 || g.isRelationLabel(key) {
			return nil, EdgeView{}, ErrAttrIsRelation
		}
	}

	id, ok := g.edgeSeq.Head()
	if !ok {
		return nil, EdgeView{}, ErrIdSeqExhausted
	}
	if g.edgeRelations.Has(id) {
		return nil, EdgeView{}, ErrIdSeqCollision
	}

	next := g.clone()
	next.edgeSeq = g.edgeSeq.Advance()
	next.edgeRelations = next.edgeRelations.Assoc(id, RelationPair{R1: r1, R2: r2})
	next.edgeAttrs = next.edgeAttrs.Assoc(id, r1, from)
	next.edgeAttrs = next.edgeAttrs.Assoc(id, r2, to)
	for key, val := range attrs {
		next.edgeAttrs = next.edgeAttrs.Assoc(id, key, val)
	}

	oldView := NewEdgeView(g, id)
	newView := NewEdgeView(next, id)
	result := g.constraint(EdgeKind, AddAction, oldView, newView, g, next)
	return result, NewEdgeView(result, id), nil
}

// RemoveEdge deletes e's edge and runs the Edge/Remove constraint. e must
// belong to g.
func (g *Graph) RemoveEdge(e EdgeView) (*Graph, error) {
	if e.ForeignView(g) {
		return nil, ErrForeignView
	}
	id := e.Id()

	next := g.clone()
	next.edgeRelations = next.edgeRelations.Dissoc(id)
	next.edgeAttrs = next.edgeAttrs.DissocAll(id)
	next.edgeSeq = next.edgeSeq.Pushback(id)

	oldView := NewEdgeView(g, id)
	newView := NewEdgeView(next, id)
	result := g.constraint(EdgeKind, RemoveAction, oldView, newView, g, next)
	return result, nil
}

// AssocEdge merges attrs into e's existing attributes. A relation-labeled
// key in attrs re-points that endpoint rather than altering the edge's
// relation pair, provided the label already names one of e's two
// relations and the supplied value is a live node of g: with one such key
// present, that one label must match; with two, both must match e's
// existing pair. A relation-labeled key that names anything other than
// one of e's current relations is rejected with ErrEdgeRelationAltered
// (it would change the pair itself), more than two relation-labeled keys
// with ErrEdgeRelationCount, and a non-live referent with
// ErrEdgeEndpointMissing. e must belong to g.
func (g *Graph) AssocEdge(e EdgeView, attrs map[AttrKey]AttrValue) (*Graph, error) {
	if e.ForeignView(g) {
		return nil, ErrForeignView
	}
	id := e.Id()
	pair, _ := g.edgeRelations.Get(id)

	var relKeys []Label
	for key := range attrs {
		if g.isRelationLabel(key) {
			relKeys = append(relKeys, key)
		}
	}

	switch len(relKeys) {
	case 0:
	case 1:
		if !pair.Has(relKeys[0]) {
			return nil, ErrEdgeRelationAltered
		}
		if !g.isLiveNodeReferent(attrs[relKeys[0]]) {
			return nil, ErrEdgeEndpointMissing
		}
	case 2:
		if !pair.Has(relKeys[0]) || !pair.Has(relKeys[1]) || relKeys[0] == relKeys[1] {
			return nil, ErrEdgeRelationAltered
		}
		if !g.isLiveNodeReferent(attrs[relKeys[0]]) || !g.isLiveNodeReferent(attrs[relKeys[1]]) {
			return nil, ErrEdgeEndpointMissing
		}
	default:
		return nil, ErrEdgeRelationCount
	}

	next := g.clone()
	for key, val := range attrs {
		next.edgeAttrs = next.edgeAttrs.Assoc(id, key, val)
	}

	oldView := NewEdgeView(g, id)
	newView := NewEdgeView(next, id)
	return g.constraint(EdgeKind, AddAction, oldView, newView, g, next), nil
}

// isLiveNodeReferent reports whether val is a NodeId naming a live node of
// g, the precondition for using it as a relation endpoint.
func (g *Graph) isLiveNodeReferent(val AttrValue) bool {
	nid, ok := val.(NodeId)
	return ok && g.HasNode(nid)
}

// DissocEdge removes keys from e's attributes. Naming a relation-labeled
// key is rejected with ErrEdgeRelationDissociation; an edge's two relations
// may never be removed without removing the edge itself. e must belong to
// g.
func (g *Graph) DissocEdge(e EdgeView, keys ...AttrKey) (*Graph, error) {
	if e.ForeignView(g) {
		return nil, ErrForeignView
	}
	id := e.Id()
	pair, _ := g.edgeRelations.Get(id)
	for _, key := range keys {
		if pair.Has(key) || g.isRelationLabel(key) {
			return nil, ErrEdgeRelationDissociation
		}
	}

	next := g.clone()
	for _, key := range keys {
		next.edgeAttrs = next.edgeAttrs.Dissoc(id, key)
	}

	oldView := NewEdgeView(g, id)
	newView := NewEdgeView(next, id)
	return g.constraint(EdgeKind, RemoveAction, oldView, newView, g, next), nil
}
