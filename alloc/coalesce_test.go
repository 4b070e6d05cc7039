package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// threeAdjacentBlocks lays out three same-size blocks back to back and
// returns their payload addresses in layout order.
func threeAdjacentBlocks(t *testing.T, sizes [3]uintptr) [3]uintptr {
	t.Helper()

	total := wordSize + sizes[0] + sizes[1] + sizes[2] + wordSize
	buf := make([]byte, total)
	base := uintptr(unsafe.Pointer(&buf[0]))

	var bps [3]uintptr
	off := base + wordSize
	for i, s := range sizes {
		bps[i] = off
		off += s
	}
	return bps
}

func TestCoalesceNoFreeNeighbors(t *testing.T) {
	a := &Arena{}
	bps := threeAdjacentBlocks(t, [3]uintptr{32, 32, 32})
	setTags(bps[0], 32, true)
	setTags(bps[1], 32, false)
	setTags(bps[2], 32, true)

	merged := a.coalesce(bps[1])
	require.Equal(t, bps[1], merged)
	require.Equal(t, bps[1], a.freeHead)
	require.Equal(t, uintptr(32), getSize(hdr(merged)))
}

func TestCoalesceLeftFreeOnly(t *testing.T) {
	a := &Arena{}
	bps := threeAdjacentBlocks(t, [3]uintptr{32, 32, 32})
	setTags(bps[0], 32, false)
	setTags(bps[1], 32, false)
	setTags(bps[2], 32, true)
	a.freeInsert(bps[0])

	merged := a.coalesce(bps[1])
	require.Equal(t, bps[0], merged)
	require.Equal(t, uintptr(64), getSize(hdr(merged)))
	require.Equal(t, 1, a.stats.BackwardCoalesces)
}

func TestCoalesceRightFreeOnly(t *testing.T) {
	a := &Arena{}
	bps := threeAdjacentBlocks(t, [3]uintptr{32, 32, 32})
	setTags(bps[0], 32, true)
	setTags(bps[1], 32, false)
	setTags(bps[2], 32, false)
	a.freeInsert(bps[2])

	merged := a.coalesce(bps[1])
	require.Equal(t, bps[1], merged)
	require.Equal(t, uintptr(64), getSize(hdr(merged)))
	require.Equal(t, bps[1], a.freeHead)
	require.Equal(t, 1, a.stats.ForwardCoalesces)
}

func TestCoalesceBothFree(t *testing.T) {
	a := &Arena{}
	bps := threeAdjacentBlocks(t, [3]uintptr{32, 32, 32})
	setTags(bps[0], 32, false)
	setTags(bps[1], 32, false)
	setTags(bps[2], 32, false)
	a.freeInsert(bps[0])
	a.freeInsert(bps[2])

	merged := a.coalesce(bps[1])
	require.Equal(t, bps[0], merged)
	require.Equal(t, uintptr(96), getSize(hdr(merged)))
	require.Equal(t, 1, a.stats.BothSideCoalesces)
}
