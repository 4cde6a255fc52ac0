// Package grove provides an arena allocator together with a small family
// of collections designed to live entirely inside arena memory.
//
// The arena (package arena) serves allocations from preallocated 64 KiB
// pages by advancing a cursor, so building a large, possibly
// self-referential graph of nodes costs one bump per node and no
// individual frees. Map, Set and their bloom-filtered variants allocate
// their nodes through an explicit *arena.Arena argument on every
// mutating call; nothing here owns an arena, and every reference handed
// out is valid exactly as long as the arena is.
//
// Map is a binary search tree ordered by a 64-bit hash of the key rather
// than the key itself. The hash acts as a pseudo-random priority, giving
// expected-logarithmic depth without rotations, and an auxiliary chain
// threaded through the same nodes preserves insertion order for
// iteration. BloomMap and BloomSet add a single uint64 fingerprint
// summary that rejects most absent keys without walking the tree.
//
// None of the types in this package are safe for concurrent use. A whole
// arena, and anything built on it, may be handed off to another
// goroutine, but must only ever be mutated from one goroutine at a time.
package grove
