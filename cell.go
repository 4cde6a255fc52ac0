package grove

// Cell is a single-slot mutable container for a bitwise-copyable value.
// It permits in-place mutation through a shared *Cell, which is how map
// nodes update their values without being re-linked.
//
// T must not require deep-copy semantics: assigning a Cell copies the
// value bit for bit. A Cell may be moved to another goroutine, but must
// never be accessed from two goroutines concurrently.
type Cell[T any] struct {
	value T
}

// NewCell creates a cell containing value.
func NewCell[T any](value T) Cell[T] {
	return Cell[T]{value: value}
}

// Get returns a copy of the contained value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the contained value.
func (c *Cell[T]) Set(value T) {
	c.value = value
}

// Ptr returns a pointer to the underlying slot.
func (c *Cell[T]) Ptr() *T {
	return &c.value
}
