// File: render.go
// Role: a snapshot view of a graph value suitable for printing or
//       comparison by a caller that wants plain data rather than views
//       bound to the graph.

package core

import (
	"fmt"
	"sort"
)

// NodeRecord is a plain-data snapshot of one node.
type NodeRecord struct {
	Id    NodeId
	Attrs map[AttrKey]AttrValue
}

// EdgeRecord is a plain-data snapshot of one edge, including its two
// relation-labeled keys among Attrs.
type EdgeRecord struct {
	Id        EdgeId
	Relations RelationPair
	Attrs     map[AttrKey]AttrValue
}

// GraphRecord is a plain-data snapshot of an entire graph value.
type GraphRecord struct {
	Relations []RelationPair
	Nodes     []NodeRecord
	Edges     []EdgeRecord
}

// Render returns a plain-data snapshot of g. Nodes and edges are sorted by
// id so two structurally-equal graphs render identically regardless of
// trie layout.
func (g *Graph) Render() GraphRecord {
	var rec GraphRecord

	seen := map[Label]bool{}
	g.relations.Range(func(r1, r2 Label) bool {
		if seen[r1] || seen[r2] {
			return true
		}
		seen[r1], seen[r2] = true, true
		rec.Relations = append(rec.Relations, RelationPair{R1: r1, R2: r2})
		return true
	})

	nodeIds := g.nodes.ToSlice()
	sort.Slice(nodeIds, func(i, j int) bool { return nodeIds[i] < nodeIds[j] })
	for _, id := range nodeIds {
		attrs := map[AttrKey]AttrValue{}
		g.nodeAttrs.Attrs(id).Range(func(k AttrKey, v AttrValue) bool {
			attrs[k] = v
			return true
		})
		rec.Nodes = append(rec.Nodes, NodeRecord{Id: id, Attrs: attrs})
	}

	var edgeIds []EdgeId
	g.edgeRelations.Range(func(id EdgeId, _ RelationPair) bool {
		edgeIds = append(edgeIds, id)
		return true
	})
	sort.Slice(edgeIds, func(i, j int) bool { return edgeIds[i] < edgeIds[j] })
	for _, id := range edgeIds {
		pair, _ := g.edgeRelations.Get(id)
		attrs := map[AttrKey]AttrValue{}
		g.edgeAttrs.Attrs(id).Range(func(k AttrKey, v AttrValue) bool {
			attrs[k] = v
			return true
		})
		rec.Edges = append(rec.Edges, EdgeRecord{Id: id, Relations: pair, Attrs: attrs})
	}

	return rec
}

// String renders a compact, deterministic textual summary of g, suitable
// for test failure messages and debugging output.
func (g *Graph) String() string {
	rec := g.Render()
	return fmt.Sprintf("Graph{nodes=%d edges=%d relations=%d}", len(rec.Nodes), len(rec.Edges), len(rec.Relations))
}
