// Package core implements the persistent, attributed, relation-typed
// directed graph value: node and edge catalogs, bidirectional relation
// registration, multi-index query resolution, and the composable
// constraint pipeline every mutation runs through.
//
// A *Graph is immutable. Every mutating method returns a new *Graph that
// shares untouched persist.* substructure with its receiver; the receiver
// remains valid and observable after the call. There is no locking because
// there is nothing to protect: a published *Graph never changes.
package core
