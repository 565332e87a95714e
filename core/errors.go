// File: errors.go
// Role: sentinel errors for the core package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Sentinels are never built with formatted, parameterized strings, and
//     every call site returns the bare sentinel without added context.

package core

import "errors"

var (
	// ErrAttrIsRelation indicates a node attribute key, or a user attribute
	// key passed to AddEdge, coincides with a relation label already known
	// to the graph.
	ErrAttrIsRelation = errors.New("core: attribute key is a known relation label")

	// ErrEdgeRelationCount indicates an edge's attribute set does not carry
	// exactly two relation-labeled keys.
	ErrEdgeRelationCount = errors.New("core: edge must carry exactly two relation-labeled keys")

	// ErrEdgeRelationsNotOpposite indicates the two relation labels supplied
	// to add-edge are not each other's opposite.
	ErrEdgeRelationsNotOpposite = errors.New("core: edge's two relation labels are not opposites")

	// ErrEdgeRelationAltered indicates an assoc-edge call would change the
	// edge's existing relation pair, which is forbidden.
	ErrEdgeRelationAltered = errors.New("core: assoc would change the edge's relation pair")

	// ErrEdgeEndpointMissing indicates an edge endpoint is not a node of
	// the graph the edge is being added to or reassociated within.
	ErrEdgeEndpointMissing = errors.New("core: edge endpoint is not a node of this graph")

	// ErrEdgeRelationDissociation indicates a dissoc-edge call named a
	// relation-labeled key, which dissoc-edge may never remove.
	ErrEdgeRelationDissociation = errors.New("core: cannot dissoc a relation-labeled key from an edge")

	// ErrForeignView indicates a view's id is not a member of the graph
	// receiving the mutation.
	ErrForeignView = errors.New("core: view does not belong to the receiving graph")

	// ErrRelationInUse indicates remove-relation was called on a label pair
	// still referenced by at least one live edge.
	ErrRelationInUse = errors.New("core: relation is still used by at least one edge")

	// ErrInvalidQueryValue indicates a relation-keyed query was given a
	// value that is neither a node view nor an edge view.
	ErrInvalidQueryValue = errors.New("core: relation-keyed query value is neither a node view nor an edge view")

	// ErrIdSeqExhausted indicates an id generator produced no head value.
	ErrIdSeqExhausted = errors.New("core: id sequence produced no head")

	// ErrIdSeqCollision indicates an id generator produced an id already
	// live in this graph's lineage.
	ErrIdSeqCollision = errors.New("core: id sequence produced an id already live in this graph")
)
