// File: nodes.go
// Role: node lifecycle — add, remove (cascading to incident edges), and
//       attribute assoc/dissoc.

package core

// AddNode allocates a fresh node id from g's node sequence, attaches attrs
// to it, and runs the Node/Add constraint. attrs keys must not collide with
// any registered relation label.
//
// Returns the resulting graph and the new node's view (bound to that
// graph).
func (g *Graph) AddNode(attrs map[AttrKey]AttrValue) (*Graph, NodeView, error) {
	id, ok := g.nodeSeq.Head()
	if !ok {
		return nil, NodeView{}, ErrIdSeqExhausted
	}
	if g.nodes.Contains(id) {
		return nil, NodeView{}, ErrIdSeqCollision
	}
	for key := range attrs {
		if g.isRelationLabel(key) {
			return nil, NodeView{}, ErrAttrIsRelation
		}
	}

	next := g.clone()
	next.nodeSeq = g.nodeSeq.Advance()
	next.nodes = next.nodes.Add(id)
	for key, val := range attrs {
		next.nodeAttrs = next.nodeAttrs.Assoc(id, key, val)
	}

	oldView := NewNodeView(g, id)
	newView := NewNodeView(next, id)
	result := g.constraint(NodeKind, AddAction, oldView, newView, g, next)
	return result, NewNodeView(result, id), nil
}

// RemoveNode deletes v's node and every edge incident to it (as pure data
// manipulation, with no individual Edge/Remove constraint invocation per
// cascaded edge), then runs the single Node/Remove constraint. v must
// belong to g.
func (g *Graph) RemoveNode(v NodeView) (*Graph, error) {
	if v.ForeignView(g) {
		return nil, ErrForeignView
	}
	id := v.Id()

	next := g.clone()
	next.nodes = next.nodes.Remove(id)
	next.nodeAttrs = next.nodeAttrs.DissocAll(id)

	var incident []EdgeId
	next.edgeRelations.Range(func(eid EdgeId, pair RelationPair) bool {
		if edgeTouchesNode(next, eid, pair, id) {
			incident = append(incident, eid)
		}
		return true
	})
	for _, eid := range incident {
		next.edgeRelations = next.edgeRelations.Dissoc(eid)
		next.edgeAttrs = next.edgeAttrs.DissocAll(eid)
	}
	next.nodeSeq = next.nodeSeq.Pushback(id)

	oldView := NewNodeView(g, id)
	newView := NewNodeView(next, id)
	result := g.constraint(NodeKind, RemoveAction, oldView, newView, g, next)
	return result, nil
}

// edgeTouchesNode reports whether edge eid, with relation pair, has id as
// either endpoint in g.
func edgeTouchesNode(g *Graph, eid EdgeId, pair RelationPair, id NodeId) bool {
	for _, label := range [2]Label{pair.R1, pair.R2} {
		val, ok := g.edgeAttrs.Get(eid, label)
		if !ok {
			continue
		}
		if nid, ok := val.(NodeId); ok && nid == id {
			return true
		}
	}
	return false
}

// AssocNode merges attrs into v's existing attributes (last writer per key
// wins; keys absent from attrs are left untouched), then runs Node/Add
// (assoc is reported to the constraint as an add). attrs keys must not
// collide with any registered relation label. v must belong to g.
func (g *Graph) AssocNode(v NodeView, attrs map[AttrKey]AttrValue) (*Graph, error) {
	if v.ForeignView(g) {
		return nil, ErrForeignView
	}
	for key := range attrs {
		if g.isRelationLabel(key) {
			return nil, ErrAttrIsRelation
		}
	}

	id := v.Id()
	next := g.clone()
	for key, val := range attrs {
		next.nodeAttrs = next.nodeAttrs.Assoc(id, key, val)
	}

	oldView := NewNodeView(g, id)
	newView := NewNodeView(next, id)
	return g.constraint(NodeKind, AddAction, oldView, newView, g, next), nil
}

// DissocNode removes keys from v's attributes. Naming a key v does not
// carry is a no-op for that key. v must belong to g.
func (g *Graph) DissocNode(v NodeView, keys ...AttrKey) (*Graph, error) {
	if v.ForeignView(g) {
		return nil, ErrForeignView
	}

	id := v.Id()
	next := g.clone()
	for _, key := range keys {
		next.nodeAttrs = next.nodeAttrs.Dissoc(id, key)
	}

	oldView := NewNodeView(g, id)
	newView := NewNodeView(next, id)
	return g.constraint(NodeKind, RemoveAction, oldView, newView, g, next), nil
}
