// Package persist implements the L1 indexed-map primitives the graph value
// is built from: a persistent hash-array-mapped trie (Map), a Set built on
// top of it, and two composite structures — Bijection and Surjection — that
// keep a reverse index alongside the forward one.
//
// Every update (Assoc/Dissoc/Add/Remove) returns a new value and leaves its
// receiver untouched. Nodes below the edited path are shared, not copied, so
// an update costs O(log32 n) allocations rather than O(n). Reads never
// mutate, so every persist value is safe to share across goroutines once
// published.
//
// Keys are compared and hashed using Go's native comparable semantics
// (hash/maphash.Comparable): any type usable as a map key in a plain Go map
// works here, with the same caveat — a key whose static type is an
// interface but whose dynamic value is not comparable (e.g. a slice stored
// in an `any`) panics on insert, exactly as it would with a builtin map.
package persist
