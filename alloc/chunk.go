package alloc

import "golang.org/x/xerrors"

// chunkTerminator is the fixed tag value a terminator word carries: a
// single allocated word with no payload (wordSize | allocBit).
const chunkTerminator = uintptr(wordSize) | allocBit

// extend maps a new chunk large enough to satisfy need, frames it with a
// sentinel and terminator, and links its interior as one large free block.
// It returns the payload address of that free block.
func (a *Arena) extend(need uintptr) (uintptr, error) {
	reqSize := alignUp(need+pageOverhead, uintptr(a.pageSize))

	newSize := uintptr(a.mapMultiplier) * uintptr(a.pageSize)
	if newSize < reqSize {
		newSize = reqSize
	}
	if a.mapMultiplier < maxPagePerMap {
		a.mapMultiplier *= 2
	}

	base, err := a.pager.Map(int(newSize))
	if err != nil {
		return 0, xerrors.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	a.chunks[base] = int(newSize)
	a.stats.GrowCalls++
	a.stats.BytesMapped += int64(newSize)
	a.stats.LiveChunks = len(a.chunks)
	a.stats.CurrentMultiplier = a.mapMultiplier

	sentinel := base + pagePad
	terminator := base + newSize - wordSize
	bp := sentinel + overhead + wordSize

	storeWord(sentinel, pack(overhead, true))
	storeWord(sentinel+wordSize, pack(overhead, true))
	storeWord(terminator, pack(wordSize, true))

	blockSize := newSize - pageOverhead
	setTags(bp, blockSize, false)
	a.freeInsert(bp)

	a.logGrow(newSize, a.mapMultiplier)

	return bp, nil
}

// tryUnmap checks whether bp is a free block that spans an entire chunk's
// interior — its left neighbor is the chunk's sentinel and its right
// neighbor is the chunk's terminator — and if so, unmaps the chunk. The
// last remaining chunk is never unmapped.
func (a *Arena) tryUnmap(bp uintptr) {
	if len(a.chunks) <= 1 {
		return
	}

	prev := prevBlk(bp)
	next := nextBlk(bp)

	if getSize(hdr(prev)) != overhead || loadWord(hdr(next)) != chunkTerminator {
		return
	}

	chunkSize := getSize(hdr(bp)) + pageOverhead
	base := prev - (wordSize + pagePad)

	a.freeUnlink(bp)

	if err := a.pager.Unmap(base, int(chunkSize)); err != nil {
		a.logUnmapFailed(base, chunkSize, err)
		a.freeInsert(bp)
		return
	}

	delete(a.chunks, base)
	a.stats.UnmapCalls++
	a.stats.BytesUnmapped += int64(chunkSize)
	a.stats.LiveChunks = len(a.chunks)

	a.logUnmap(base, chunkSize)
}
