// File: equality.go
// Role: structural equality between graph values, independent of lineage —
//       two separately-built graphs with the same nodes, edges, attributes
//       and relations compare equal regardless of id-sequence or
//       constraint-pipeline history.

package core

import "github.com/relaxis/digraph/persist"

// Equal reports whether g and other hold the same nodes, node attributes,
// edges, edge attributes, edge relation pairs, and relation bijection.
// Constraint pipelines, id sequences, and metadata are not compared.
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if g.nodes.Len() != other.nodes.Len() {
		return false
	}
	if g.edgeRelations.Len() != other.edgeRelations.Len() {
		return false
	}

	ok := true
	g.nodes.Range(func(id NodeId) bool {
		if !other.nodes.Contains(id) {
			ok = false
			return false
		}
		return true
	})
	if !ok {
		return false
	}

	g.edgeRelations.Range(func(id EdgeId, pair RelationPair) bool {
		otherPair, has := other.edgeRelations.Get(id)
		swapped := RelationPair{R1: pair.R2, R2: pair.R1}
		if !has || (otherPair != pair && otherPair != swapped) {
			ok = false
			return false
		}
		return true
	})
	if !ok {
		return false
	}

	if !attrMapEqual(g.nodeAttrs, other.nodeAttrs) {
		return false
	}
	if !attrMapEqual(g.edgeAttrs, other.edgeAttrs) {
		return false
	}

	return relationsEqual(g, other)
}

// attrMapEqual reports whether two attr-maps hold identical (id, k, v)
// triples. Reverse-index internals are not compared directly; the forward
// records they are derived from are.
func attrMapEqual[Id comparable](a, b persist.AttrMap[Id, AttrKey, AttrValue]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ok := true
	a.Range(func(id Id, attrs persist.Map[AttrKey, AttrValue]) bool {
		otherAttrs := b.Attrs(id)
		if attrs.Len() != otherAttrs.Len() {
			ok = false
			return false
		}
		attrs.Range(func(k AttrKey, v AttrValue) bool {
			ov, has := otherAttrs.Get(k)
			if !has || ov != v {
				ok = false
				return false
			}
			return true
		})
		return ok
	})
	return ok
}

func relationsEqual(g, other *Graph) bool {
	if g.relations.Len() != other.relations.Len() {
		return false
	}
	ok := true
	g.relations.Range(func(k, v Label) bool {
		ov, has := other.relations.Get(k)
		if !has || ov != v {
			ok = false
			return false
		}
		return true
	})
	return ok
}
