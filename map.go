package grove

import (
	"hash/maphash"
	"iter"

	"github.com/grovekit/grove/arena"
)

// HashFunc hashes a key to the 64-bit order key used by the tree.
type HashFunc[K comparable] func(K) uint64

// defaultHashFunc builds a maphash-backed hash with a per-map seed.
func defaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// mapNode is one entry of a Map. The left/right slots form the
// hash-ordered tree; next threads the insertion-order chain through the
// same nodes, independent of tree shape.
type mapNode[K comparable, V any] struct {
	key   K
	hash  uint64
	value Cell[V]
	left  *mapNode[K, V]
	right *mapNode[K, V]
	next  *mapNode[K, V]
}

// Map is a map of keys to values built as a binary search tree ordered
// by key hash, with all nodes allocated in an arena. Nodes are never
// rotated: the hash fixed at insertion acts as a pseudo-random priority,
// which keeps expected depth logarithmic without rebalancing.
//
// The zero value is an empty map ready for use. Every mutating
// operation takes the arena that owns the nodes; the map must not
// outlive it.
//
// Nodes live in arena memory, which the garbage collector does not
// scan. Keys and values that carry pointers (strings included) must
// reference data the arena keeps alive (see arena.CopyString) or data
// that outlives the arena.
type Map[K comparable, V any] struct {
	root *mapNode[K, V] // tree root; also the head of the insertion chain
	last *mapNode[K, V] // tail of the insertion chain, for O(1) append
	hash HashFunc[K]
}

// MapOption configures a Map.
type MapOption[K comparable, V any] func(*Map[K, V])

// WithHashFunc overrides the default key hash. The function must be
// deterministic for the lifetime of the map.
func WithHashFunc[K comparable, V any](f HashFunc[K]) MapOption[K, V] {
	return func(m *Map[K, V]) {
		m.hash = f
	}
}

// NewMap creates an empty map.
func NewMap[K comparable, V any](opts ...MapOption[K, V]) *Map[K, V] {
	var m Map[K, V]
	for _, opt := range opts {
		opt(&m)
	}
	return &m
}

// hashKey returns the order key for key, creating the default hash on
// first use so that the zero value works.
func (m *Map[K, V]) hashKey(key K) uint64 {
	if m.hash == nil {
		m.hash = defaultHashFunc[K]()
	}
	return m.hash(key)
}

// findSlot walks the tree and returns the link that holds the matching
// node, or the empty link where it would be attached.
//
// Descend left when the target hash is smaller than the node's, right
// when it is larger. On equal hashes the keys are compared directly;
// unequal keys with equal hashes fall through to the right, so a
// colliding key always has exactly one consistent location.
func (m *Map[K, V]) findSlot(key K, hash uint64) **mapNode[K, V] {
	slot := &m.root

	for {
		node := *slot
		switch {
		case node == nil:
			return slot
		case hash == node.hash && key == node.key:
			return slot
		case hash < node.hash:
			slot = &node.left
		default:
			slot = &node.right
		}
	}
}

// Insert adds a key-value pair to the map, allocating the node in a.
// If the key was already present its value is overwritten in place and
// the previous value is returned with replaced == true; the key keeps
// its original position in insertion order.
func (m *Map[K, V]) Insert(a *arena.Arena, key K, value V) (old V, replaced bool) {
	hash := m.hashKey(key)
	slot := m.findSlot(key, hash)

	if node := *slot; node != nil {
		old = node.value.Get()
		node.value.Set(value)
		return old, true
	}

	node := arena.Alloc(a, mapNode[K, V]{
		key:   key,
		hash:  hash,
		value: NewCell(value),
	})

	if m.last != nil {
		m.last.next = node
	}
	m.last = node
	*slot = node

	return old, false
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if node := m.lookup(key); node != nil {
		return node.value.Get(), true
	}
	var zero V
	return zero, false
}

// GetKey returns the stored key equal to key. Useful when the stored
// copy is arena-interned and the caller wants that copy.
func (m *Map[K, V]) GetKey(key K) (K, bool) {
	if node := m.lookup(key); node != nil {
		return node.key, true
	}
	var zero K
	return zero, false
}

// Contains reports whether the map holds a value for key.
func (m *Map[K, V]) Contains(key K) bool {
	return m.lookup(key) != nil
}

func (m *Map[K, V]) lookup(key K) *mapNode[K, V] {
	if m.root == nil {
		return nil
	}
	return *m.findSlot(key, m.hashKey(key))
}

// IsEmpty reports whether the map contains no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Clear detaches all entries. The nodes stay behind in the arena as
// unreachable garbage; that is the point of the no-individual-free
// design.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.last = nil
}

// All returns an iterator over key-value pairs in insertion order. The
// sequence is restartable: each range starts over from the first
// inserted entry.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for node := m.root; node != nil; node = node.next {
			if !yield(node.key, node.value.Get()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for node := m.root; node != nil; node = node.next {
			if !yield(node.key) {
				return
			}
		}
	}
}

// MapsEqual reports whether two maps hold the same entries in the same
// insertion order.
func MapsEqual[K, V comparable](a, b *Map[K, V]) bool {
	na, nb := a.root, b.root
	for na != nil && nb != nil {
		if na.key != nb.key || na.value.Get() != nb.value.Get() {
			return false
		}
		na, nb = na.next, nb.next
	}
	return na == nil && nb == nil
}

// depth returns the longest root-to-leaf path. Balance is a
// probabilistic property of the hash, so tests bound this
// statistically rather than structurally.
func (m *Map[K, V]) depth() int {
	return nodeDepth(m.root)
}

func nodeDepth[K comparable, V any](n *mapNode[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(nodeDepth(n.left), nodeDepth(n.right))
}

// BloomMap is a Map fronted by a 64-bit bloom fingerprint summary of
// every key ever inserted. Lookups whose fingerprint is not covered by
// the summary return a definite negative without touching the tree.
//
// This is ideal for small maps where querying absent keys is common.
// The summary grows monotonically and only resets on Clear.
type BloomMap[K ~string, V any] struct {
	filter uint64
	inner  Map[K, V]
}

// NewBloomMap creates an empty BloomMap.
func NewBloomMap[K ~string, V any](opts ...MapOption[K, V]) *BloomMap[K, V] {
	var m BloomMap[K, V]
	for _, opt := range opts {
		opt(&m.inner)
	}
	return &m
}

// Insert adds a key-value pair, folding the key's fingerprint into the
// summary before delegating to the inner map.
func (m *BloomMap[K, V]) Insert(a *arena.Arena, key K, value V) (old V, replaced bool) {
	m.filter |= Fingerprint(key)
	return m.inner.Insert(a, key, value)
}

// Get returns the value stored for key. Absent keys are usually
// rejected by the summary alone.
func (m *BloomMap[K, V]) Get(key K) (V, bool) {
	f := Fingerprint(key)
	if m.filter&f != f {
		var zero V
		return zero, false
	}
	return m.inner.Get(key)
}

// Contains reports whether the map holds a value for key.
func (m *BloomMap[K, V]) Contains(key K) bool {
	f := Fingerprint(key)
	return m.filter&f == f && m.inner.Contains(key)
}

// IsEmpty reports whether the map contains no entries.
func (m *BloomMap[K, V]) IsEmpty() bool {
	return m.inner.IsEmpty()
}

// Clear detaches all entries and resets the summary to zero.
func (m *BloomMap[K, V]) Clear() {
	m.filter = 0
	m.inner.Clear()
}

// Filter returns the accumulated fingerprint summary.
func (m *BloomMap[K, V]) Filter() uint64 {
	return m.filter
}

// All returns an iterator over key-value pairs in insertion order.
func (m *BloomMap[K, V]) All() iter.Seq2[K, V] {
	return m.inner.All()
}

// Keys returns an iterator over keys in insertion order.
func (m *BloomMap[K, V]) Keys() iter.Seq[K] {
	return m.inner.Keys()
}

// AsMap returns the map without its summary. The returned map shares
// nodes with the receiver.
func (m *BloomMap[K, V]) AsMap() *Map[K, V] {
	inner := m.inner
	return &inner
}

// ToBloomMap wraps m with a fingerprint summary recomputed from every
// existing key. The returned map shares nodes with m.
func ToBloomMap[K ~string, V any](m *Map[K, V]) *BloomMap[K, V] {
	bm := &BloomMap[K, V]{inner: *m}
	for key := range m.Keys() {
		bm.filter |= Fingerprint(key)
	}
	return bm
}

// BloomMapsEqual reports whether two bloom maps hold the same entries
// in the same insertion order.
func BloomMapsEqual[K ~string, V comparable](a, b *BloomMap[K, V]) bool {
	return MapsEqual(&a.inner, &b.inner)
}
