// File: traverse.go
// Role: primitive traversal building blocks — edges-touching and
//       nodes-away — the only multi-hop operations this package provides.
//       Neither performs search or path reconstruction; both are thin
//       iterated applications of core's single-hop query.

package ops

import "github.com/relaxis/digraph/core"

// EdgesTouching returns every edge incident to v under any relation label
// known to g, deduplicated by id.
func EdgesTouching(g *core.Graph, v core.NodeView) ([]core.EdgeView, error) {
	rec := g.Render()
	seen := map[core.EdgeId]bool{}
	var out []core.EdgeView
	for _, pair := range rec.Relations {
		for _, label := range [2]core.Label{pair.R1, pair.R2} {
			matches, err := core.EdgesWhere(g, core.Query{label: v})
			if err != nil {
				return nil, err
			}
			for _, e := range matches {
				if !seen[e.Id()] {
					seen[e.Id()] = true
					out = append(out, e)
				}
			}
		}
	}
	return out, nil
}

// NodesAway returns the set of nodes reached by exactly d hops along
// relation r starting from x, deduplicated by id. A negative d reverses r
// to its opposite and continues with the absolute value of d. d == 0
// returns x verbatim.
func NodesAway(g *core.Graph, d int, r core.Label, x []core.NodeView) ([]core.NodeView, error) {
	if d == 0 {
		return x, nil
	}
	hops := d
	label := r
	if hops < 0 {
		hops = -hops
		opp, ok := g.Opposite(r)
		if !ok {
			return nil, core.ErrInvalidQueryValue
		}
		label = opp
	}

	frontier := x
	for i := 0; i < hops; i++ {
		next := map[core.NodeId]core.NodeView{}
		for _, v := range frontier {
			reached, err := core.NodesWhere(g, core.Query{label: v})
			if err != nil {
				return nil, err
			}
			for _, nv := range reached {
				next[nv.Id()] = nv
			}
		}
		frontier = frontier[:0]
		for _, v := range next {
			frontier = append(frontier, v)
		}
	}
	return frontier, nil
}
