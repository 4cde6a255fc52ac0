package grove

import (
	"iter"
	"unsafe"

	"github.com/grovekit/grove/arena"
)

type listNode[T any] struct {
	value T
	next  *listNode[T]
}

// List is a single-ended linked list with arena-allocated nodes. The
// zero value is an empty list. A List value is a single pointer, so
// copying one is cheap and both copies see the same nodes; mutating
// methods only change the copy they are called on.
type List[T any] struct {
	root *listNode[T]
}

// ListOf creates a single-element list.
func ListOf[T any](a *arena.Arena, value T) List[T] {
	return List[T]{
		root: arena.Alloc(a, listNode[T]{value: value}),
	}
}

// ListFromSlice builds a list holding vals in order.
func ListFromSlice[T any](a *arena.Arena, vals []T) List[T] {
	b := NewListBuilder[T](a)
	for _, v := range vals {
		b.Push(v)
	}
	return b.List()
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.root == nil
}

// Clear empties the list by dropping the reference to the first node.
func (l *List[T]) Clear() {
	l.root = nil
}

// Prepend adds value to the beginning of the list.
func (l *List[T]) Prepend(a *arena.Arena, value T) {
	l.root = arena.Alloc(a, listNode[T]{value: value, next: l.root})
}

// Shift removes the first element and returns it.
func (l *List[T]) Shift() (T, bool) {
	if l.root == nil {
		var zero T
		return zero, false
	}
	value := l.root.value
	l.root = l.root.next
	return value, true
}

// ShiftCopy returns the first element and a list of the remaining
// elements, leaving the receiver untouched. The returned list shares
// nodes with l.
func (l List[T]) ShiftCopy() (T, List[T], bool) {
	if l.root == nil {
		var zero T
		return zero, List[T]{}, false
	}
	return l.root.value, List[T]{root: l.root.next}, true
}

// Only returns the first element if, and only if, it is the sole
// element of the list.
func (l *List[T]) Only() (T, bool) {
	if l.root != nil && l.root.next == nil {
		return l.root.value, true
	}
	var zero T
	return zero, false
}

// All returns an iterator over the elements in list order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.root; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// ListsEqual reports whether two lists hold the same elements in the
// same order.
func ListsEqual[T comparable](a, b List[T]) bool {
	na, nb := a.root, b.root
	for na != nil && nb != nil {
		if na.value != nb.value {
			return false
		}
		na, nb = na.next, nb.next
	}
	return na == nil && nb == nil
}

// ListBuilder assembles a list front to back with O(1) appends.
type ListBuilder[T any] struct {
	arena *arena.Arena
	first *listNode[T]
	last  *listNode[T]
}

// NewListBuilder creates an empty builder allocating from a.
func NewListBuilder[T any](a *arena.Arena) *ListBuilder[T] {
	return &ListBuilder[T]{arena: a}
}

// Push appends item to the end of the list under construction.
func (b *ListBuilder[T]) Push(item T) {
	node := arena.Alloc(b.arena, listNode[T]{value: item})

	if b.last == nil {
		b.first = node
		b.last = node
		return
	}

	b.last.next = node
	b.last = node
}

// List returns the built list. The builder may keep pushing; the
// returned list will see elements appended later.
func (b *ListBuilder[T]) List() List[T] {
	return List[T]{root: b.first}
}

// RawList is a List with its element type and arena lifetime erased.
// It exists for advanced interop where a list must cross a boundary
// that cannot carry type parameters.
type RawList struct {
	root unsafe.Pointer
}

// Raw erases the list's type and lifetime.
func (l List[T]) Raw() RawList {
	return RawList{root: unsafe.Pointer(l.root)}
}

// Unraw reconstructs a typed list from a raw handle. The caller asserts
// that r was produced from a List[T] whose arena is still alive; a
// wrong type or a dead arena is undefined behavior. This is the one
// deliberately unchecked escape hatch in the package.
func Unraw[T any](r RawList) List[T] {
	return List[T]{root: (*listNode[T])(r.root)}
}
