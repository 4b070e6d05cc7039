package alloc

import "github.com/kopta/goheap/pager"

// Pager is an alias for pager.Pager, so callers constructing an Arena don't
// need to import the pager package themselves just to name the type.
type Pager = pager.Pager
