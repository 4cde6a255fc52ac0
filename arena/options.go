package arena

import "log/slog"

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the logger used for page-growth debug events. The
// default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Arena) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithHeapPages forces pages onto the Go heap instead of anonymous
// mappings. Mainly useful for tests and for platforms where off-heap
// pages are undesirable.
func WithHeapPages() Option {
	return func(a *Arena) {
		a.heapOnly = true
	}
}
