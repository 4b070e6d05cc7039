package alloc

import (
	"fmt"
	"unsafe"
)

// fakePager is an in-process Pager backed by ordinary Go slices, so the
// core engine tests never touch a real syscall. It mirrors the hive
// allocator tests' habit of building synthetic fixtures instead of real
// backing files.
type fakePager struct {
	pageSize int
	bufs     map[uintptr][]byte
	mapCalls int
}

func newFakePager(pageSize int) *fakePager {
	return &fakePager{pageSize: pageSize, bufs: make(map[uintptr][]byte)}
}

func (f *fakePager) PageSize() int { return f.pageSize }

func (f *fakePager) Map(n int) (uintptr, error) {
	buf := make([]byte, n)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	f.bufs[addr] = buf
	f.mapCalls++
	return addr, nil
}

func (f *fakePager) Unmap(base uintptr, _ int) error {
	if _, ok := f.bufs[base]; !ok {
		return fmt.Errorf("fakePager: unmap of unknown base %#x", base)
	}
	delete(f.bufs, base)
	return nil
}
