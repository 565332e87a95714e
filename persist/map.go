// File: map.go
// Role: persistent hash-array-mapped trie (HAMT) — the single structural-
//       sharing primitive every other persist type is built from.
// Determinism:
//   - Iteration order (Range) follows trie layout, not insertion order; it
//     is stable for a given Map value but not sorted.
// Concurrency:
//   - A *Map is never mutated after its constructor returns; concurrent
//     reads from multiple goroutines are always safe.

package persist

import (
	"hash/maphash"
	"math/bits"
)

// bitsPerLevel controls the trie's branching factor (32-way).
const bitsPerLevel = 5

const (
	branchMask = (1 << bitsPerLevel) - 1
	// maxDepth is the number of 5-bit groups in a 64-bit hash, rounded up.
	// Beyond it there are no more hash bits left to branch on, so colliding
	// keys are kept together in a single bucket leaf.
	maxDepth = (64 + bitsPerLevel - 1) / bitsPerLevel
)

var hashSeed = maphash.MakeSeed()

func hashOf[K comparable](k K) uint64 {
	return maphash.Comparable(hashSeed, k)
}

func bitsAt(h uint64, depth int) int {
	return int((h >> (depth * bitsPerLevel)) & branchMask)
}

func popcount(bitmap uint32, below int) int {
	return bits.OnesCount32(bitmap & ((1 << uint(below)) - 1))
}

type entry[K comparable, V any] struct {
	key K
	val V
}

// node is either a leaf (entries != nil) or a branch (children indexed by a
// sparse bitmap). A nil *node denotes an empty subtree.
type node[K comparable, V any] struct {
	entries  []entry[K, V]
	bitmap   uint32
	children []*node[K, V]
}

func (n *node[K, V]) isLeaf() bool { return n != nil && n.entries != nil }

// Map is a persistent K -> V trie. The zero value is the empty Map, the
// same value Empty[K, V]() returns.
type Map[K comparable, V any] struct {
	root *node[K, V]
	size int
}

// Empty returns the empty Map for the given key/value types.
func Empty[K comparable, V any]() Map[K, V] {
	return Map[K, V]{}
}

// Len reports the number of entries. O(1).
func (m Map[K, V]) Len() int { return m.size }

// Get returns the value stored for k, if any. O(log32 n).
func (m Map[K, V]) Get(k K) (V, bool) {
	h := hashOf(k)
	n := m.root
	depth := 0
	for n != nil {
		if n.isLeaf() {
			for _, e := range n.entries {
				if e.key == k {
					return e.val, true
				}
			}
			var zero V
			return zero, false
		}
		idx := bitsAt(h, depth)
		bit := uint32(1) << uint(idx)
		if n.bitmap&bit == 0 {
			var zero V
			return zero, false
		}
		n = n.children[popcount(n.bitmap, idx)]
		depth++
	}
	var zero V
	return zero, false
}

// Has reports whether k is present. O(log32 n).
func (m Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Assoc returns a new Map with k bound to v, sharing every untouched node
// with the receiver. O(log32 n).
func (m Map[K, V]) Assoc(k K, v V) Map[K, V] {
	h := hashOf(k)
	newRoot, grew := assocNode(m.root, h, 0, k, v)
	size := m.size
	if grew {
		size++
	}
	return Map[K, V]{root: newRoot, size: size}
}

// Dissoc returns a new Map with k removed, if present. O(log32 n).
func (m Map[K, V]) Dissoc(k K) Map[K, V] {
	if m.root == nil {
		return m
	}
	h := hashOf(k)
	newRoot, shrank := dissocNode(m.root, h, 0, k)
	size := m.size
	if shrank {
		size--
	}
	return Map[K, V]{root: newRoot, size: size}
}

// Range calls f for every entry until f returns false. Order is stable for a
// given value but is not sorted; callers needing sorted output must sort the
// keys themselves.
func (m Map[K, V]) Range(f func(k K, v V) bool) {
	rangeNode(m.root, f)
}

func rangeNode[K comparable, V any](n *node[K, V], f func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if n.isLeaf() {
		for _, e := range n.entries {
			if !f(e.key, e.val) {
				return false
			}
		}
		return true
	}
	for _, c := range n.children {
		if !rangeNode(c, f) {
			return false
		}
	}
	return true
}

func assocNode[K comparable, V any](n *node[K, V], h uint64, depth int, k K, v V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{entries: []entry[K, V]{{key: k, val: v}}}, true
	}
	if n.isLeaf() {
		for i, e := range n.entries {
			if e.key == k {
				next := append([]entry[K, V](nil), n.entries...)
				next[i] = entry[K, V]{key: k, val: v}
				return &node[K, V]{entries: next}, false
			}
		}
		if len(n.entries) == 1 && depth < maxDepth {
			// Split the single-entry leaf into a branch and recurse both
			// the displaced entry and the new one into it.
			existing := n.entries[0]
			branch := &node[K, V]{}
			branch, _ = assocNode(branch, hashOf(existing.key), depth, existing.key, existing.val)
			return assocNode(branch, h, depth, k, v)
		}
		// Either a genuine full-depth hash collision, or a bucket leaf that
		// already holds more than one colliding key: append.
		next := append(append([]entry[K, V](nil), n.entries...), entry[K, V]{key: k, val: v})
		return &node[K, V]{entries: next}, true
	}
	idx := bitsAt(h, depth)
	bit := uint32(1) << uint(idx)
	pos := popcount(n.bitmap, idx)
	if n.bitmap&bit == 0 {
		children := make([]*node[K, V], len(n.children)+1)
		copy(children, n.children[:pos])
		children[pos] = &node[K, V]{entries: []entry[K, V]{{key: k, val: v}}}
		copy(children[pos+1:], n.children[pos:])
		return &node[K, V]{bitmap: n.bitmap | bit, children: children}, true
	}
	newChild, grew := assocNode(n.children[pos], h, depth+1, k, v)
	children := append([]*node[K, V](nil), n.children...)
	children[pos] = newChild
	return &node[K, V]{bitmap: n.bitmap, children: children}, grew
}

func dissocNode[K comparable, V any](n *node[K, V], h uint64, depth int, k K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	if n.isLeaf() {
		for i, e := range n.entries {
			if e.key != k {
				continue
			}
			if len(n.entries) == 1 {
				return nil, true
			}
			next := append(append([]entry[K, V](nil), n.entries[:i]...), n.entries[i+1:]...)
			return &node[K, V]{entries: next}, true
		}
		return n, false
	}
	idx := bitsAt(h, depth)
	bit := uint32(1) << uint(idx)
	if n.bitmap&bit == 0 {
		return n, false
	}
	pos := popcount(n.bitmap, idx)
	newChild, shrank := dissocNode(n.children[pos], h, depth+1, k)
	if !shrank {
		return n, false
	}
	if newChild == nil {
		if len(n.children) == 1 {
			return nil, true
		}
		children := append(append([]*node[K, V](nil), n.children[:pos]...), n.children[pos+1:]...)
		newBitmap := n.bitmap &^ bit
		// Collapse a branch with exactly one remaining leaf child back into
		// that leaf, keeping the trie shallow after heavy deletion.
		if len(children) == 1 && children[0].isLeaf() {
			return children[0], true
		}
		return &node[K, V]{bitmap: newBitmap, children: children}, true
	}
	children := append([]*node[K, V](nil), n.children...)
	children[pos] = newChild
	if len(children) == 1 && newChild.isLeaf() {
		return newChild, true
	}
	return &node[K, V]{bitmap: n.bitmap, children: children}, true
}
