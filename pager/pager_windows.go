//go:build windows

package pager

import (
	"golang.org/x/sys/windows"
	"golang.org/x/xerrors"
)

// Windows maps memory via VirtualAlloc/VirtualFree.
type Windows struct {
	pageSize int
}

// NewWindows constructs a Windows pager using GetSystemInfo's reported page
// size.
func NewWindows() *Windows {
	var info windows.SystemInfo
	windows.GetSystemInfo(&info)
	return &Windows{pageSize: int(info.PageSize)}
}

func (w *Windows) PageSize() int { return w.pageSize }

func (w *Windows) Map(nBytes int) (uintptr, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(nBytes), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return 0, xerrors.Errorf("pager: VirtualAlloc %d bytes: %w", nBytes, err)
	}
	return addr, nil
}

func (w *Windows) Unmap(base uintptr, nBytes int) error {
	_ = nBytes // VirtualFree with MEM_RELEASE requires size 0; the OS knows the region's extent.
	if err := windows.VirtualFree(base, 0, windows.MEM_RELEASE); err != nil {
		return xerrors.Errorf("pager: VirtualFree at %#x: %w", base, err)
	}
	return nil
}
