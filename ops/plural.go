// File: plural.go
// Role: plural add (cartesian product over sequential-valued attributes)
//       and the iterated single-element assoc/dissoc variants. These never
//       reduce over a collection the way the original implementation's
//       buggy helpers did; each combination or id is handled by one direct
//       call into core.

package ops

import "github.com/relaxis/digraph/core"

// AttrSpec is one key of a plural add: Values holds every value the
// cartesian product should range over for that key. A key with a single
// Values entry contributes the same value to every combination.
type AttrSpec struct {
	Key    core.AttrKey
	Values []core.AttrValue
}

// combinations returns the cartesian product of specs as a slice of
// complete attribute maps, one per combination.
func combinations(specs []AttrSpec) []map[core.AttrKey]core.AttrValue {
	combos := []map[core.AttrKey]core.AttrValue{{}}
	for _, spec := range specs {
		var next []map[core.AttrKey]core.AttrValue
		for _, combo := range combos {
			for _, val := range spec.Values {
				extended := make(map[core.AttrKey]core.AttrValue, len(combo)+1)
				for k, v := range combo {
					extended[k] = v
				}
				extended[spec.Key] = val
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}

// AddNodes adds one node per combination in the cartesian product of specs,
// in combination order. Returns the resulting graph and every node view
// produced, in the same order.
func AddNodes(g *core.Graph, specs []AttrSpec) (*core.Graph, []core.NodeView, error) {
	var views []core.NodeView
	for _, attrs := range combinations(specs) {
		next, v, err := g.AddNode(attrs)
		if err != nil {
			return nil, nil, err
		}
		g = next
		views = append(views, v)
	}
	return g, views, nil
}

// AddEdges adds one edge per combination in the cartesian product of specs,
// every edge sharing the same endpoints and relation pair.
func AddEdges(g *core.Graph, from, to core.NodeId, r1, r2 core.Label, specs []AttrSpec) (*core.Graph, []core.EdgeView, error) {
	var views []core.EdgeView
	for _, attrs := range combinations(specs) {
		next, v, err := g.AddEdge(from, to, r1, r2, attrs)
		if err != nil {
			return nil, nil, err
		}
		g = next
		views = append(views, v)
	}
	return g, views, nil
}

// AssocNodes applies attrs to every id in ids, in order.
func AssocNodes(g *core.Graph, ids []core.NodeId, attrs map[core.AttrKey]core.AttrValue) (*core.Graph, error) {
	for _, id := range ids {
		next, err := g.AssocNode(core.NewNodeView(g, id), attrs)
		if err != nil {
			return nil, err
		}
		g = next
	}
	return g, nil
}

// DissocNodes removes keys from every id in ids, in order.
func DissocNodes(g *core.Graph, ids []core.NodeId, keys ...core.AttrKey) (*core.Graph, error) {
	for _, id := range ids {
		next, err := g.DissocNode(core.NewNodeView(g, id), keys...)
		if err != nil {
			return nil, err
		}
		g = next
	}
	return g, nil
}

// AssocEdges applies attrs to every id in ids, in order.
func AssocEdges(g *core.Graph, ids []core.EdgeId, attrs map[core.AttrKey]core.AttrValue) (*core.Graph, error) {
	for _, id := range ids {
		next, err := g.AssocEdge(core.NewEdgeView(g, id), attrs)
		if err != nil {
			return nil, err
		}
		g = next
	}
	return g, nil
}

// DissocEdges removes keys from every id in ids, in order.
func DissocEdges(g *core.Graph, ids []core.EdgeId, keys ...core.AttrKey) (*core.Graph, error) {
	for _, id := range ids {
		next, err := g.DissocEdge(core.NewEdgeView(g, id), keys...)
		if err != nil {
			return nil, err
		}
		g = next
	}
	return g, nil
}

// AssocAll applies nodeAttrs to every node in nodeIds and edgeAttrs to
// every edge in edgeIds, nodes first. It is the plural analogue that spans
// both domains in one call.
func AssocAll(g *core.Graph, nodeIds []core.NodeId, nodeAttrs map[core.AttrKey]core.AttrValue, edgeIds []core.EdgeId, edgeAttrs map[core.AttrKey]core.AttrValue) (*core.Graph, error) {
	g, err := AssocNodes(g, nodeIds, nodeAttrs)
	if err != nil {
		return nil, err
	}
	return AssocEdges(g, edgeIds, edgeAttrs)
}
