package grove

import (
	"iter"

	"github.com/grovekit/grove/arena"
)

// Set is a set of values backed by a Map with a zero-size value type.
// Like Map, the zero value is an empty set ready for use, and the set
// must not outlive the arena its nodes are allocated in.
type Set[K comparable] struct {
	inner Map[K, struct{}]
}

// NewSet creates an empty set.
func NewSet[K comparable](opts ...MapOption[K, struct{}]) *Set[K] {
	var s Set[K]
	for _, opt := range opts {
		opt(&s.inner)
	}
	return &s
}

// Insert adds item to the set, allocating its node in a. It reports
// whether the item was newly added.
func (s *Set[K]) Insert(a *arena.Arena, item K) bool {
	_, replaced := s.inner.Insert(a, item, struct{}{})
	return !replaced
}

// Get returns the stored item equal to item, if present.
func (s *Set[K]) Get(item K) (K, bool) {
	return s.inner.GetKey(item)
}

// Contains reports whether the set holds item.
func (s *Set[K]) Contains(item K) bool {
	return s.inner.Contains(item)
}

// IsEmpty reports whether the set contains no items.
func (s *Set[K]) IsEmpty() bool {
	return s.inner.IsEmpty()
}

// Clear detaches all items, leaving the nodes behind in the arena.
func (s *Set[K]) Clear() {
	s.inner.Clear()
}

// All returns an iterator over items in insertion order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.inner.Keys()
}

// SetsEqual reports whether two sets hold the same items in the same
// insertion order.
func SetsEqual[K comparable](a, b *Set[K]) bool {
	return MapsEqual(&a.inner, &b.inner)
}

// BloomSet is a Set fronted by a bloom fingerprint summary, backed by a
// BloomMap with a zero-size value type.
type BloomSet[K ~string] struct {
	inner BloomMap[K, struct{}]
}

// NewBloomSet creates an empty BloomSet.
func NewBloomSet[K ~string](opts ...MapOption[K, struct{}]) *BloomSet[K] {
	var s BloomSet[K]
	for _, opt := range opts {
		opt(&s.inner.inner)
	}
	return &s
}

// Insert adds item to the set, folding its fingerprint into the
// summary. It reports whether the item was newly added.
func (s *BloomSet[K]) Insert(a *arena.Arena, item K) bool {
	_, replaced := s.inner.Insert(a, item, struct{}{})
	return !replaced
}

// Contains reports whether the set holds item. Absent items are usually
// rejected by the summary alone.
func (s *BloomSet[K]) Contains(item K) bool {
	return s.inner.Contains(item)
}

// IsEmpty reports whether the set contains no items.
func (s *BloomSet[K]) IsEmpty() bool {
	return s.inner.IsEmpty()
}

// Clear detaches all items and resets the summary to zero.
func (s *BloomSet[K]) Clear() {
	s.inner.Clear()
}

// Filter returns the accumulated fingerprint summary.
func (s *BloomSet[K]) Filter() uint64 {
	return s.inner.Filter()
}

// All returns an iterator over items in insertion order.
func (s *BloomSet[K]) All() iter.Seq[K] {
	return s.inner.Keys()
}

// AsSet returns the set without its summary. The returned set shares
// nodes with the receiver.
func (s *BloomSet[K]) AsSet() *Set[K] {
	return &Set[K]{inner: s.inner.inner}
}

// ToBloomSet wraps s with a fingerprint summary recomputed from every
// existing item. The returned set shares nodes with s.
func ToBloomSet[K ~string](s *Set[K]) *BloomSet[K] {
	return &BloomSet[K]{inner: *ToBloomMap(&s.inner)}
}

// BloomSetsEqual reports whether two bloom sets hold the same items in
// the same insertion order.
func BloomSetsEqual[K ~string](a, b *BloomSet[K]) bool {
	return BloomMapsEqual(&a.inner, &b.inner)
}
