// File: iduuid.go
// Role: an alternative IdSeq backed by github.com/google/uuid, for callers
//       who want globally-unique ids instead of the default dense
//       arithmetic sequence.

package core

import "github.com/google/uuid"

// uuidSeq draws a fresh random id on every Head call. Collisions are
// astronomically unlikely but not impossible; a collision surfaces as
// ErrIdSeqCollision from the caller side (Graph.AddNode/AddEdge) rather than
// being retried internally, keeping the sequence itself side-effect-free
// between calls.
type uuidSeq[T ~int64] struct {
	pending []T
}

// NewUUIDSeq returns an IdSeq that derives each id from a random UUID's low
// 63 bits, so T stays ordered and comparable like the default sequence
// while no longer being dense or predictable.
func NewUUIDSeq[T ~int64]() IdSeq[T] {
	return uuidSeq[T]{}
}

func uuidToId[T ~int64](u uuid.UUID) T {
	var v int64
	for _, b := range u[8:] {
		v = v<<8 | int64(b)
	}
	return T(v & (1<<63 - 1))
}

func (s uuidSeq[T]) Head() (T, bool) {
	if n := len(s.pending); n > 0 {
		return s.pending[n-1], true
	}
	return uuidToId[T](uuid.New()), true
}

func (s uuidSeq[T]) Advance() IdSeq[T] {
	if n := len(s.pending); n > 0 {
		return uuidSeq[T]{pending: s.pending[:n-1]}
	}
	return s
}

func (s uuidSeq[T]) Pushback(id T) IdSeq[T] {
	pending := append(append([]T(nil), s.pending...), id)
	return uuidSeq[T]{pending: pending}
}
