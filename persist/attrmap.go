// File: attrmap.go
// Role: Id -> (AttrKey -> AttrValue) with, for every AttrKey independently,
//       a reverse index AttrValue -> Set<Id>. This is the structure both
//       the node catalog and the edge catalog are built from.
// Determinism:
//   - keys-with/KeysWith is O(log32 n) plus result size: a single inverse
//     lookup.
//   - An id with no remaining attributes is dropped from the forward index
//     entirely; no empty attribute record is ever kept (see Dissoc).

package persist

// AttrMap is a persistent Id -> attribute-map structure, with a reverse
// index per attribute key letting KeysWith answer "which ids have k=v" in
// O(log32 n) plus result size instead of a full scan.
type AttrMap[Id comparable, K comparable, V comparable] struct {
	fwd Map[Id, Map[K, V]]
	// inv[k] is a Surjection from id to its value of k, so inv[k].InverseGet(v)
	// is the reverse index for that one attribute key.
	inv Map[K, Surjection[Id, V]]
}

// EmptyAttrMap returns the empty AttrMap.
func EmptyAttrMap[Id comparable, K comparable, V comparable]() AttrMap[Id, K, V] {
	return AttrMap[Id, K, V]{fwd: Empty[Id, Map[K, V]](), inv: Empty[K, Surjection[Id, V]]()}
}

// Len reports the number of ids carrying at least one attribute. O(1).
func (m AttrMap[Id, K, V]) Len() int { return m.fwd.Len() }

// Has reports whether id has any attribute recorded.
func (m AttrMap[Id, K, V]) Has(id Id) bool { return m.fwd.Has(id) }

// Attrs returns the full attribute map for id, or the empty map if absent.
func (m AttrMap[Id, K, V]) Attrs(id Id) Map[K, V] {
	attrs, ok := m.fwd.Get(id)
	if !ok {
		return Empty[K, V]()
	}
	return attrs
}

// Get returns the value of attribute k on id, if any. O(log32 n).
func (m AttrMap[Id, K, V]) Get(id Id, k K) (V, bool) {
	attrs, ok := m.fwd.Get(id)
	if !ok {
		var zero V
		return zero, false
	}
	return attrs.Get(k)
}

// Assoc returns a new AttrMap with id's attribute k set to v, maintaining
// both the forward map and k's reverse index. O(log32 n).
func (m AttrMap[Id, K, V]) Assoc(id Id, k K, v V) AttrMap[Id, K, V] {
	out := m
	attrs := out.Attrs(id)
	attrs = attrs.Assoc(k, v)
	out.fwd = out.fwd.Assoc(id, attrs)
	surj, ok := out.inv.Get(k)
	if !ok {
		surj = EmptySurjection[Id, V]()
	}
	out.inv = out.inv.Assoc(k, surj.Assoc(id, v))
	return out
}

// Dissoc removes attribute k from id, dropping id from the forward index
// entirely if it carried no other attribute. O(log32 n).
func (m AttrMap[Id, K, V]) Dissoc(id Id, k K) AttrMap[Id, K, V] {
	attrs, ok := m.fwd.Get(id)
	if !ok {
		return m
	}
	if _, has := attrs.Get(k); !has {
		return m
	}
	out := m
	attrs = attrs.Dissoc(k)
	if attrs.Len() == 0 {
		out.fwd = out.fwd.Dissoc(id)
	} else {
		out.fwd = out.fwd.Assoc(id, attrs)
	}
	if surj, ok := out.inv.Get(k); ok {
		surj = surj.Dissoc(id)
		out.inv = out.inv.Assoc(k, surj)
	}
	return out
}

// DissocAll removes every attribute of id in one step (used when an id is
// deleted outright). O(a log32 n) where a is id's attribute count.
func (m AttrMap[Id, K, V]) DissocAll(id Id) AttrMap[Id, K, V] {
	attrs, ok := m.fwd.Get(id)
	if !ok {
		return m
	}
	out := m
	attrs.Range(func(k K, _ V) bool {
		if surj, ok := out.inv.Get(k); ok {
			out.inv = out.inv.Assoc(k, surj.Dissoc(id))
		}
		return true
	})
	out.fwd = out.fwd.Dissoc(id)
	return out
}

// KeysWith returns the set of ids whose attribute k equals v. O(log32 n)
// plus result size.
func (m AttrMap[Id, K, V]) KeysWith(k K, v V) Set[Id] {
	surj, ok := m.inv.Get(k)
	if !ok {
		return EmptySet[Id]()
	}
	return surj.InverseGet(v)
}

// KeysWithAttr returns every id that has any value at all for k. O(n_k).
func (m AttrMap[Id, K, V]) KeysWithAttr(k K) Set[Id] {
	surj, ok := m.inv.Get(k)
	if !ok {
		return EmptySet[Id]()
	}
	out := EmptySet[Id]()
	surj.Range(func(id Id, _ V) bool {
		out = out.Add(id)
		return true
	})
	return out
}

// Range calls f for every (id, attrs) pair until f returns false.
func (m AttrMap[Id, K, V]) Range(f func(id Id, attrs Map[K, V]) bool) {
	m.fwd.Range(f)
}
