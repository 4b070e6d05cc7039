package alloc

import "errors"

var (
	// ErrInvalidSize indicates a negative size was passed to Allocate.
	ErrInvalidSize = errors.New("alloc: invalid size")

	// ErrOutOfMemory indicates the pager refused to map a new chunk.
	ErrOutOfMemory = errors.New("alloc: out of memory")
)
