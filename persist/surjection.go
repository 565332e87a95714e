// File: surjection.go
// Role: persistent many-to-one K -> V mapping with an O(log32 n) inverse
//       V -> Set<K> index; the shared shape behind attr-map's per-key index.

package persist

// Surjection is a persistent K -> V mapping with an inverse V -> Set<K>
// index kept in lock-step.
type Surjection[K comparable, V comparable] struct {
	fwd Map[K, V]
	inv Map[V, Set[K]]
}

// EmptySurjection returns the empty Surjection.
func EmptySurjection[K comparable, V comparable]() Surjection[K, V] {
	return Surjection[K, V]{fwd: Empty[K, V](), inv: Empty[V, Set[K]]()}
}

// Len reports the number of forward pairs. O(1).
func (s Surjection[K, V]) Len() int { return s.fwd.Len() }

// Get returns the V bound to k, if any. O(log32 n).
func (s Surjection[K, V]) Get(k K) (V, bool) { return s.fwd.Get(k) }

// InverseGet returns the set of keys currently bound to v. O(log32 n) plus
// result size; returns the empty set if v is unused.
func (s Surjection[K, V]) InverseGet(v V) Set[K] {
	set, ok := s.inv.Get(v)
	if !ok {
		return EmptySet[K]()
	}
	return set
}

// Assoc returns a new Surjection with k bound to v, moving k out of its
// previous bucket (if any) and into v's bucket. O(log32 n).
func (s Surjection[K, V]) Assoc(k K, v V) Surjection[K, V] {
	out := s
	if oldV, ok := out.fwd.Get(k); ok {
		if oldV == v {
			return out
		}
		out = out.removeFromBucket(oldV, k)
	}
	out.fwd = out.fwd.Assoc(k, v)
	bucket := out.InverseGet(v).Add(k)
	out.inv = out.inv.Assoc(v, bucket)
	return out
}

// Dissoc removes k's binding, if any, from both indices. O(log32 n).
func (s Surjection[K, V]) Dissoc(k K) Surjection[K, V] {
	oldV, ok := s.fwd.Get(k)
	if !ok {
		return s
	}
	out := s.removeFromBucket(oldV, k)
	out.fwd = out.fwd.Dissoc(k)
	return out
}

func (s Surjection[K, V]) removeFromBucket(v V, k K) Surjection[K, V] {
	bucket := s.InverseGet(v).Remove(k)
	out := s
	if bucket.Len() == 0 {
		out.inv = out.inv.Dissoc(v)
	} else {
		out.inv = out.inv.Assoc(v, bucket)
	}
	return out
}

// Range calls f for every (k, v) forward pair until f returns false.
func (s Surjection[K, V]) Range(f func(k K, v V) bool) {
	s.fwd.Range(f)
}
