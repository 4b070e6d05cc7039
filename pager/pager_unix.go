//go:build unix

package pager

import (
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

// Unix maps anonymous, page-aligned memory via mmap(2).
type Unix struct {
	pageSize int
}

// NewUnix constructs a Unix pager using the runtime's reported page size.
func NewUnix() *Unix {
	return &Unix{pageSize: unix.Getpagesize()}
}

func (u *Unix) PageSize() int { return u.pageSize }

func (u *Unix) Map(nBytes int) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, nBytes, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return 0, xerrors.Errorf("pager: mmap %d bytes: %w", nBytes, err)
	}
	return uintptr(unsafe.Pointer(&b[0])), nil
}

func (u *Unix) Unmap(base uintptr, nBytes int) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), nBytes)
	if err := unix.Munmap(b); err != nil {
		return xerrors.Errorf("pager: munmap %d bytes at %#x: %w", nBytes, base, err)
	}
	return nil
}
