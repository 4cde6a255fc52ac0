// Package mmap provides anonymous memory mappings used as arena pages.
//
// Pages obtained here live outside the Go heap, so the garbage collector
// never scans or moves them. The arena relies on that: node structures
// written into a page keep their addresses for the lifetime of the
// mapping.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc/VirtualFree
//
// Close is idempotent. Callers must ensure no access to Bytes() after
// Close returns.
package mmap
