// File: query.go
// Role: multi-index query resolution over the node and edge attribute maps,
//       including relation-keyed traversal.

package core

import "github.com/relaxis/digraph/persist"

// Query maps an attribute key or relation label to one or more values to
// match against. A nil value contributes the empty set for that value.
type Query map[AttrKey]any

// valuesOf normalizes a query value, which may be a single value or a
// slice of values, into a slice.
func valuesOf(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return []any{v}
}

// Nodes returns every node view of g, unordered but stable for this graph
// value.
func Nodes(g *Graph) []NodeView {
	ids := g.nodes.ToSlice()
	views := make([]NodeView, len(ids))
	for i, id := range ids {
		views[i] = NewNodeView(g, id)
	}
	return views
}

// NodesWhere resolves a node query: the intersection, over the query's
// keys, of the union over each key's values of the matching node ids.
func NodesWhere(g *Graph, q Query) ([]NodeView, error) {
	if len(q) == 0 {
		return Nodes(g), nil
	}

	var sets []persist.Set[NodeId]
	for key, v := range q {
		union := persist.EmptySet[NodeId]()
		for _, val := range valuesOf(v) {
			if val == nil {
				continue
			}
			if g.isRelationLabel(key) {
				matched, err := nodesAcrossRelation(g, key, val)
				if err != nil {
					return nil, err
				}
				for _, id := range matched {
					union = union.Add(id)
				}
				continue
			}
			for _, id := range g.nodeAttrs.KeysWith(key, val).ToSlice() {
				union = union.Add(id)
			}
		}
		sets = append(sets, union)
	}

	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Intersect(s)
	}

	ids := result.ToSlice()
	views := make([]NodeView, len(ids))
	for i, id := range ids {
		views[i] = NewNodeView(g, id)
	}
	return views, nil
}

// nodesAcrossRelation resolves the set of node ids reachable from val across
// relation label.
func nodesAcrossRelation(g *Graph, label Label, val any) ([]NodeId, error) {
	opp, _ := g.Opposite(label)
	switch v := val.(type) {
	case NodeView:
		var out []NodeId
		for _, eid := range g.edgeAttrs.KeysWith(label, v.Id()).ToSlice() {
			if other, ok := g.edgeAttrs.Get(eid, opp); ok {
				if nid, ok := other.(NodeId); ok {
					out = append(out, nid)
				}
			}
		}
		return out, nil
	case EdgeView:
		other, ok := g.edgeAttrs.Get(v.Id(), opp)
		if !ok {
			return nil, nil
		}
		nid, ok := other.(NodeId)
		if !ok {
			return nil, nil
		}
		return []NodeId{nid}, nil
	default:
		return nil, ErrInvalidQueryValue
	}
}

// Edges returns every edge view of g, unordered but stable for this graph
// value.
func Edges(g *Graph) []EdgeView {
	var ids []EdgeId
	g.edgeRelations.Range(func(id EdgeId, _ RelationPair) bool {
		ids = append(ids, id)
		return true
	})
	views := make([]EdgeView, len(ids))
	for i, id := range ids {
		views[i] = NewEdgeView(g, id)
	}
	return views
}

// EdgesWhere resolves an edge query analogously to NodesWhere: for a
// relation-keyed key with a node value, the result is edges incident to
// that node along that relation; with an edge value, the result is edges
// whose opposite-endpoint under that relation equals the given edge's.
func EdgesWhere(g *Graph, q Query) ([]EdgeView, error) {
	if len(q) == 0 {
		return Edges(g), nil
	}

	var sets []persist.Set[EdgeId]
	for key, v := range q {
		union := persist.EmptySet[EdgeId]()
		for _, val := range valuesOf(v) {
			if val == nil {
				continue
			}
			if g.isRelationLabel(key) {
				matched, err := edgesAcrossRelation(g, key, val)
				if err != nil {
					return nil, err
				}
				for _, id := range matched {
					union = union.Add(id)
				}
				continue
			}
			for _, id := range g.edgeAttrs.KeysWith(key, val).ToSlice() {
				union = union.Add(id)
			}
		}
		sets = append(sets, union)
	}

	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Intersect(s)
	}

	ids := result.ToSlice()
	views := make([]EdgeView, len(ids))
	for i, id := range ids {
		views[i] = NewEdgeView(g, id)
	}
	return views, nil
}

func edgesAcrossRelation(g *Graph, label Label, val any) ([]EdgeId, error) {
	opp, _ := g.Opposite(label)
	switch v := val.(type) {
	case NodeView:
		return g.edgeAttrs.KeysWith(label, v.Id()).ToSlice(), nil
	case EdgeView:
		other, ok := g.edgeAttrs.Get(v.Id(), opp)
		if !ok {
			return nil, nil
		}
		return g.edgeAttrs.KeysWith(opp, other).ToSlice(), nil
	default:
		return nil, ErrInvalidQueryValue
	}
}
