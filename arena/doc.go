// Package arena provides a paginated bump allocator for bitwise-copyable
// values.
//
// An Arena serves every allocation by advancing a cursor through a fixed
// 64 KiB page. When a page overflows, a fresh page is appended and the
// cursor continues there; a request larger than one page gets a dedicated
// block of exactly that size. Nothing is ever freed individually: pages
// are released together when the arena is closed.
//
// Pages are backed by anonymous memory mappings when the platform
// provides them, keeping node-heavy graphs out of the garbage collector's
// view. If mapping fails the arena silently falls back to heap pages, so
// allocation itself can never fail.
//
// # Concurrency Model
//
// An Arena is owned by a single goroutine. It may be handed off to
// another goroutine wholesale, but it must never be used from two
// goroutines at once; there is no internal locking.
//
// # Safety Contract
//
// Memory returned by Uninitialized and AllocPointer must be fully
// written before it is read. References obtained before Reset must not
// be used afterwards, and nothing obtained from the arena is valid after
// Close. Values stored in arena memory are invisible to the garbage
// collector: any pointer they carry must target data that the arena
// itself keeps alive (see CopyString and Absorb) or data that outlives
// the arena. Violations are undefined behavior, not runtime errors.
package arena
