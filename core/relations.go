// File: relations.go
// Role: relation-label registration. Relations must exist before an edge
//       naming them can be added, and may not be removed while any live
//       edge still refers to either label.

package core

// AddRelation registers r1 and r2 as each other's opposite. Registering an
// already-known pair is a no-op; registering a label that already has a
// different opposite replaces that pairing (see persist.Bijection.Assoc).
func (g *Graph) AddRelation(r1, r2 Label) *Graph {
	out := g.clone()
	if g.RelatedIn(r1, r2) {
		return out
	}
	rels := out.relations
	for _, r := range [2]Label{r1, r2} {
		rels = rels.DissocKey(r).DissocVal(r)
	}
	out.relations = rels.Assoc(r1, r2)
	return out
}

// RemoveRelation unregisters the pairing between r1 and r2. It fails with
// ErrRelationInUse if any live edge still carries r1 or r2 among its two
// relation-labeled keys.
func (g *Graph) RemoveRelation(r1, r2 Label) (*Graph, error) {
	if !g.RelatedIn(r1, r2) {
		return g, nil
	}
	if g.edgeAttrs.KeysWithAttr(r1).Len() > 0 || g.edgeAttrs.KeysWithAttr(r2).Len() > 0 {
		return nil, ErrRelationInUse
	}
	out := g.clone()
	out.relations = out.relations.DissocKey(r1).DissocKey(r2)
	return out, nil
}
