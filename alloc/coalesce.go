package alloc

// coalesce merges bp with any free neighbors and returns the payload
// address of the resulting (possibly larger) free block. bp must not be on
// the free list when coalesce is called. The free list is left consistent:
// an absorbed right neighbor is unlinked, and exactly one entry
// representing the merged block remains.
func (a *Arena) coalesce(bp uintptr) uintptr {
	lbp := prevBlk(bp)
	rbp := nextBlk(bp)

	lfree := !getAlloc(hdr(lbp))
	rfree := !getAlloc(hdr(rbp))

	curSize := getSize(hdr(bp))
	lSize := getSize(hdr(lbp))
	rSize := getSize(hdr(rbp))

	switch {
	case !lfree && !rfree:
		a.freeInsert(bp)
		return bp

	case lfree && !rfree:
		setTags(lbp, lSize+curSize, false)
		a.stats.BackwardCoalesces++
		return lbp

	case !lfree && rfree:
		setTags(bp, curSize+rSize, false)
		a.freeUnlink(rbp)
		a.freeInsert(bp)
		a.stats.ForwardCoalesces++
		return bp

	default: // lfree && rfree
		setTags(lbp, lSize+curSize+rSize, false)
		a.freeUnlink(rbp)
		a.stats.BothSideCoalesces++
		return lbp
	}
}
