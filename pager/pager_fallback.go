//go:build !unix && !windows

package pager

import (
	"sync"
	"unsafe"
)

const fallbackPageSize = 4096

// Fallback backs mappings with ordinary Go-heap memory, padded and shifted
// to a page boundary the way Apache Arrow's GoAllocator shifts its buffers
// to a 64-byte boundary. Since the memory is heap-managed, Fallback keeps
// each mapped slice alive in region for as long as it stays mapped —
// dropping only the uintptr, as alloc.Arena does, would let the GC collect
// it out from under a live chunk.
type Fallback struct {
	mu     sync.Mutex
	region map[uintptr][]byte
}

// NewFallback constructs a pure-Go pager for platforms without a real mmap
// equivalent wired in this package.
func NewFallback() *Fallback {
	return &Fallback{region: make(map[uintptr][]byte)}
}

func (f *Fallback) PageSize() int { return fallbackPageSize }

func (f *Fallback) Map(nBytes int) (uintptr, error) {
	buf := make([]byte, nBytes+fallbackPageSize)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	aligned := (addr + fallbackPageSize - 1) &^ (fallbackPageSize - 1)

	f.mu.Lock()
	f.region[aligned] = buf
	f.mu.Unlock()

	return aligned, nil
}

func (f *Fallback) Unmap(base uintptr, _ int) error {
	f.mu.Lock()
	delete(f.region, base)
	f.mu.Unlock()
	return nil
}
