package alloc

import "log/slog"

// Arena is a boundary-tag allocator over one or more chunks obtained from a
// Pager. It is not safe for concurrent use.
type Arena struct {
	pager Pager

	pageSize      int
	mapMultiplier int

	// chunks maps each live chunk's base address to its mapped size.
	// tryUnmap deletes a chunk's entry when it unmaps it, and the "never
	// unmap the last chunk" rule checks len(chunks).
	chunks map[uintptr]int

	// freeHead is the payload address of the head of the explicit free
	// list, or 0 if the list is empty.
	freeHead uintptr

	stats  Stats
	logger *slog.Logger
}

// New creates an Arena backed by p. No chunk is mapped until the first
// Allocate call needs one.
func New(p Pager) (*Arena, error) {
	return &Arena{
		pager:         p,
		pageSize:      p.PageSize(),
		mapMultiplier: 1,
		chunks:        make(map[uintptr]int),
		logger:        debugLogger,
	}, nil
}

// Allocate reserves a block of at least size bytes and returns a handle to
// its payload. It grows the arena by mapping a new chunk if no free block
// is large enough.
func (a *Arena) Allocate(size int) (Handle, error) {
	if size < 0 {
		return 0, ErrInvalidSize
	}

	need := alignUp(uintptr(size)+overhead, alignment)
	if need < minBlockSize {
		need = minBlockSize
	}

	bp := a.freeFirstFit(need)
	if bp == 0 {
		var err error
		bp, err = a.extend(need)
		if err != nil {
			return 0, err
		}
		// extend() inserts a block of at least `need` bytes at the head
		// of the free list, and no older free block satisfied need, so
		// this first-fit search returns the block extend() just created.
		if fit := a.freeFirstFit(need); fit != 0 {
			bp = fit
		}
	}

	a.markAllocated(bp, need)

	a.stats.AllocCalls++
	a.stats.BytesAllocated += int64(need)

	return Handle(bp), nil
}

// Free releases the block referenced by h, coalesces it with any free
// neighbors, and unmaps its chunk if the merged block now spans the whole
// chunk interior (unless it is the arena's last chunk).
//
// Freeing a handle that was not returned by Allocate, or freeing the same
// handle twice, is undefined behavior: Free does not validate its input.
func (a *Arena) Free(h Handle) error {
	if h == 0 {
		return nil
	}

	bp := uintptr(h)
	size := getSize(hdr(bp))
	setTags(bp, size, false)

	merged := a.coalesce(bp)
	a.tryUnmap(merged)

	a.stats.FreeCalls++
	a.stats.BytesFreed += int64(size)

	return nil
}

// Stats returns a snapshot of the arena's bookkeeping counters.
func (a *Arena) Stats() Stats {
	s := a.stats
	s.LiveChunks = len(a.chunks)
	s.CurrentMultiplier = a.mapMultiplier
	return s
}

// markAllocated carves size bytes out of the free block bp, splitting off
// and re-inserting the remainder when it is large enough to be its own
// block, then marks the (possibly shrunk) block allocated and unlinks it
// from the free list.
func (a *Arena) markAllocated(bp, size uintptr) {
	curSize := getSize(hdr(bp))
	remainder := curSize - size

	if remainder >= minBlockSize {
		// Shrink bp first — nextBlk depends on bp's current header.
		storeWord(hdr(bp), size)
		storeWord(ftr(bp), size)

		next := nextBlk(bp)
		setTags(next, remainder, false)
		a.freeInsert(next)

		a.stats.SplitCount++
		curSize = size
	}

	setTags(bp, curSize, true)
	a.freeUnlink(bp)
}
