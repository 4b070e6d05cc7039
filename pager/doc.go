// Package pager abstracts the OS page-mapping primitive that alloc.Arena
// builds chunks from: map a region of anonymous memory, and unmap it.
//
// Three implementations are provided:
//
//   - Unix: mmap(2)/munmap(2) via golang.org/x/sys/unix.
//   - Windows: VirtualAlloc/VirtualFree via golang.org/x/sys/windows.
//   - Fallback: ordinary Go-heap memory, padded and shifted for page
//     alignment, for platforms with neither.
//
// Callers pick an implementation with the matching build tag and hand it
// to alloc.New; nothing in this package is platform-generic on its own.
package pager
