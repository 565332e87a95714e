// File: path.go
// Role: add-path and add-cycle, which thread a chain of existing nodes
//       together with freshly-added edges under a single relation pair.

package ops

import "github.com/relaxis/digraph/core"

// AddPath adds len(nodes)-1 edges, edge i carrying {r1: nodes[i], r2:
// nodes[i+1]} plus attrs. A path of fewer than two nodes adds no edges.
func AddPath(g *core.Graph, r1, r2 core.Label, nodes []core.NodeId, attrs map[core.AttrKey]core.AttrValue) (*core.Graph, []core.EdgeView, error) {
	var edges []core.EdgeView
	for i := 0; i+1 < len(nodes); i++ {
		next, e, err := g.AddEdge(nodes[i], nodes[i+1], r1, r2, attrs)
		if err != nil {
			return nil, nil, err
		}
		g = next
		edges = append(edges, e)
	}
	return g, edges, nil
}

// AddCycle behaves as AddPath, plus a closing edge from the last node back
// to the first. A cycle of fewer than two nodes adds no edges.
func AddCycle(g *core.Graph, r1, r2 core.Label, nodes []core.NodeId, attrs map[core.AttrKey]core.AttrValue) (*core.Graph, []core.EdgeView, error) {
	g, edges, err := AddPath(g, r1, r2, nodes, attrs)
	if err != nil {
		return nil, nil, err
	}
	if len(nodes) < 2 {
		return g, edges, nil
	}
	g, closing, err := g.AddEdge(nodes[len(nodes)-1], nodes[0], r1, r2, attrs)
	if err != nil {
		return nil, nil, err
	}
	edges = append(edges, closing)
	return g, edges, nil
}
