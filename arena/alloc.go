package arena

import "unsafe"

// Alloc places value in arena memory and returns a reference to it. The
// reference stays valid exactly as long as the arena does.
//
// T must be bitwise-copyable: it may contain pointers only if they target
// data the arena keeps alive, or data that outlives the arena.
func Alloc[T any](a *Arena, value T) *T {
	p := Uninitialized[T](a)
	*p = value
	return p
}

// Uninitialized reserves space for a T and returns a pointer to it
// without writing anything. Reading through the pointer before fully
// initializing it is undefined behavior.
func Uninitialized[T any](a *Arena) *T {
	var zero T
	return (*T)(a.AllocPointer(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero))))
}

// AllocSlice copies vals into arena memory and returns the copy. Useful
// when the original slice has an undefined lifetime.
func AllocSlice[T any](a *Arena, vals []T) []T {
	if len(vals) == 0 {
		return nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return vals[:len(vals):len(vals)]
	}

	p := a.AllocPointer(len(vals)*size, int(unsafe.Alignof(zero)))
	out := unsafe.Slice((*T)(p), len(vals))
	copy(out, vals)
	return out
}

// Absorb takes ownership of an existing buffer and retains its backing
// array as a dedicated page, avoiding a second allocation and a copy.
// The caller must not keep using the buffer through other references
// once it is absorbed.
func Absorb[T any](a *Arena, vals []T) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if cap(vals) == 0 || size == 0 {
		return vals
	}

	full := vals[:cap(vals)]
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&full[0])), cap(vals)*size)
	a.retain(raw)
	return vals
}

// AbsorbString retains s as a dedicated page without copying, extending
// its lifetime to the arena's. Go strings are immutable, so unlike
// Absorb the original remains usable.
func AbsorbString(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	raw := unsafe.Slice(unsafe.StringData(s), len(s))
	a.retain(raw)
	return s
}
