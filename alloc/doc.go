// Package alloc implements a boundary-tag dynamic memory allocator over
// pages obtained from a pager.Pager.
//
// # Overview
//
// The allocator manages one or more independent page-aligned chunks, each
// framed by a sentinel block and a terminator word so that neighbor lookups
// never need a special case at a chunk's edges. Free blocks are linked
// through an explicit, unordered doubly-linked list whose nodes are
// overlaid directly on the free blocks' own payload bytes — no side
// allocation is needed to track free space.
//
// # Arena
//
//	p := pager.NewUnix() // or pager.NewWindows(), pager.NewFallback()
//	a, err := alloc.New(p)
//	if err != nil {
//	    return err
//	}
//
//	h, err := a.Allocate(128)
//	if err != nil {
//	    return err
//	}
//	buf := alloc.Bytes(h, 128)
//	copy(buf, payload)
//
//	err = a.Free(h)
//
// # Growth
//
// When no free block satisfies a request, the arena maps a new chunk from
// its Pager. Each new chunk is the larger of map-multiplier pages and the
// page-rounded size the request needs. The multiplier doubles on every
// growth up to 32, and never resets — later growths stay large even after
// the arena has been mostly freed.
//
// # Reclamation
//
// Freeing a block that, after coalescing, spans an entire chunk's interior
// causes that chunk to be unmapped and returned to the Pager — except the
// last remaining chunk, which is always kept mapped.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. Callers must synchronize access
// externally if an Arena is shared across goroutines.
package alloc
