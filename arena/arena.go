package arena

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/grovekit/grove/internal/mmap"
)

const (
	// PageSize is the fixed capacity of every arena page (64 KiB).
	// Requests larger than this become dedicated blocks outside the
	// page cursor.
	PageSize = 64 * 1024

	// wordSize is the allocation granularity; every request is rounded
	// up to a multiple of the pointer word.
	wordSize = int(unsafe.Sizeof(uintptr(0)))
)

// Stats tracks arena memory usage.
//
//   - Pages: pages and dedicated blocks currently held
//   - BytesReserved: total capacity of those pages
//   - BytesUsed: bytes handed out, after word rounding
//   - Allocs: cumulative allocation count
type Stats struct {
	Pages         int
	BytesReserved uint64
	BytesUsed     uint64
	Allocs        uint64
}

type page struct {
	data    []byte
	mapping *mmap.Mapping // nil for heap-backed and absorbed pages
}

// Arena is a region allocator. The zero value is not usable; construct
// with New.
type Arena struct {
	pages  []page
	cur    []byte // bump page; always the most recently created regular page
	offset int

	heapOnly bool
	logger   *slog.Logger
	stats    Stats
}

// New creates an arena with a single preallocated page.
func New(opts ...Option) *Arena {
	a := &Arena{
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.cur = a.newPage()
	return a
}

// newPage creates a fresh bump page and appends it to the page list.
func (a *Arena) newPage() []byte {
	if !a.heapOnly {
		m, err := mmap.MapAnon(PageSize)
		if err == nil {
			a.pages = append(a.pages, page{data: m.Bytes(), mapping: m})
			a.stats.Pages++
			a.stats.BytesReserved += PageSize
			a.logger.Debug("arena: mapped page", "pages", len(a.pages))
			return m.Bytes()
		}
		a.heapOnly = true
		a.logger.Debug("arena: mmap unavailable, using heap pages", "error", err)
	}

	data := make([]byte, PageSize)
	a.pages = append(a.pages, page{data: data})
	a.stats.Pages++
	a.stats.BytesReserved += PageSize
	return data
}

// dedicated appends a block of exactly size bytes, leaving the page
// cursor untouched.
func (a *Arena) dedicated(size int) []byte {
	block := make([]byte, size)
	a.pages = append(a.pages, page{data: block})
	a.stats.Pages++
	a.stats.BytesReserved += uint64(size)
	a.stats.BytesUsed += uint64(size)
	a.stats.Allocs++
	a.logger.Debug("arena: dedicated block", "size", size)
	return block
}

// retain appends an existing buffer as a fully-used page so that its
// backing memory lives as long as the arena.
func (a *Arena) retain(data []byte) {
	a.pages = append(a.pages, page{data: data})
	a.stats.Pages++
	a.stats.BytesReserved += uint64(len(data))
	a.stats.BytesUsed += uint64(len(data))
}

// AllocPointer returns a pointer to an uninitialized region of the given
// size and alignment, bound to the arena's lifetime. Alignments up to
// the pointer word are always honored; pages are page-aligned, so larger
// powers of two work as well.
//
// Allocation cannot fail: on overflow a new page (or dedicated block) is
// created, and the only terminal condition is host memory exhaustion.
func (a *Arena) AllocPointer(size, align int) unsafe.Pointer {
	if size > PageSize {
		return unsafe.Pointer(&a.dedicated(size)[0])
	}
	if size <= 0 {
		size = wordSize
	}

	size = (size + wordSize - 1) &^ (wordSize - 1)
	if align > wordSize {
		a.offset = (a.offset + align - 1) &^ (align - 1)
	}

	if a.offset+size > PageSize {
		a.cur = a.newPage()
		a.offset = 0
	}

	p := unsafe.Pointer(&a.cur[a.offset])
	a.offset += size
	a.stats.BytesUsed += uint64(size)
	a.stats.Allocs++
	return p
}

// AllocBytes returns an uninitialized byte slice of length n in arena
// memory.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(a.AllocPointer(n, 1)), n)
}

// CopyBytes copies b into arena memory and returns the copy.
func (a *Arena) CopyBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	dst := a.AllocBytes(len(b))
	copy(dst, b)
	return dst
}

// CopyString copies s into arena memory. The returned string is valid
// for the lifetime of the arena, regardless of where s came from.
func (a *Arena) CopyString(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := a.AllocBytes(len(s))
	copy(b, s)
	return unsafe.String(&b[0], len(b))
}

// Offset reports the cursor position within the current page.
func (a *Arena) Offset() int {
	return a.offset
}

// Reset rewinds the cursor to the start of the current page without
// releasing any pages, so the page is reused on the next allocation.
//
// This invalidates every reference previously handed out; using one
// afterwards is undefined behavior. The only sound use is benchmark
// loops that rebuild a structure from scratch on each iteration.
func (a *Arena) Reset() {
	a.offset = 0
	a.stats.BytesUsed = 0
	a.stats.Allocs = 0
}

// Close releases all pages at once, unmapping any mapped ones. It is
// idempotent. Every reference into the arena is invalid afterwards.
func (a *Arena) Close() error {
	var errs []error
	for i := range a.pages {
		if m := a.pages[i].mapping; m != nil {
			if err := m.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		a.pages[i] = page{}
	}
	a.pages = nil
	a.cur = nil
	a.offset = 0
	a.stats = Stats{}
	return errors.Join(errs...)
}

// Stats returns the current usage counters.
func (a *Arena) Stats() Stats {
	return a.stats
}

func (a *Arena) String() string {
	return fmt.Sprintf("Arena{pages: %d, reserved: %.2f KB, used: %.2f KB, allocs: %d}",
		a.stats.Pages,
		float64(a.stats.BytesReserved)/1024,
		float64(a.stats.BytesUsed)/1024,
		a.stats.Allocs,
	)
}
