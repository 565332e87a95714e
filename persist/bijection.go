// File: bijection.go
// Role: persistent 1-1 K <-> V mapping with O(log32 n) inverse lookup,
//       backing the graph's relation label <-> opposite-label table.

package persist

// Bijection is a persistent one-to-one mapping between K and V. Forward and
// inverse directions are always kept consistent: associating (k, v) removes
// any prior pair that collided on either side.
type Bijection[K comparable, V comparable] struct {
	fwd Map[K, V]
	inv Map[V, K]
}

// EmptyBijection returns the empty Bijection.
func EmptyBijection[K comparable, V comparable]() Bijection[K, V] {
	return Bijection[K, V]{fwd: Empty[K, V](), inv: Empty[V, K]()}
}

// Len reports the number of pairs. O(1).
func (b Bijection[K, V]) Len() int { return b.fwd.Len() }

// Get returns the V bound to k, if any. O(log32 n).
func (b Bijection[K, V]) Get(k K) (V, bool) { return b.fwd.Get(k) }

// InverseGet returns the K bound to v, if any. O(log32 n).
func (b Bijection[K, V]) InverseGet(v V) (K, bool) { return b.inv.Get(v) }

// Assoc returns a new Bijection with k <-> v bound, evicting whatever pair
// previously held either side. O(log32 n).
func (b Bijection[K, V]) Assoc(k K, v V) Bijection[K, V] {
	out := b
	if oldV, ok := out.fwd.Get(k); ok {
		out.inv = out.inv.Dissoc(oldV)
	}
	if oldK, ok := out.inv.Get(v); ok {
		out.fwd = out.fwd.Dissoc(oldK)
	}
	out.fwd = out.fwd.Assoc(k, v)
	out.inv = out.inv.Assoc(v, k)
	return out
}

// DissocKey removes the pair keyed by k, if any. O(log32 n).
func (b Bijection[K, V]) DissocKey(k K) Bijection[K, V] {
	v, ok := b.fwd.Get(k)
	if !ok {
		return b
	}
	return Bijection[K, V]{fwd: b.fwd.Dissoc(k), inv: b.inv.Dissoc(v)}
}

// DissocVal removes the pair valued at v, if any. O(log32 n).
func (b Bijection[K, V]) DissocVal(v V) Bijection[K, V] {
	k, ok := b.inv.Get(v)
	if !ok {
		return b
	}
	return Bijection[K, V]{fwd: b.fwd.Dissoc(k), inv: b.inv.Dissoc(v)}
}

// Range calls f for every (k, v) pair until f returns false.
func (b Bijection[K, V]) Range(f func(k K, v V) bool) {
	b.fwd.Range(f)
}

// Inverse returns the V -> K view of this bijection.
func (b Bijection[K, V]) Inverse() Map[V, K] { return b.inv }
