package gc

import "unsafe"

// block is a managed allocation: a header followed by a payload of type T.
// header is embedded first so its address and the block's address coincide.
type block[T Traceable] struct {
	header
	payload T
}

// newBlock allocates a block[T] on the Go heap and wires up its
// reclaimDescriptor. The block starts unmarked and unlinked; the caller
// (Alloc) is responsible for appending it to a Collector's list.
func newBlock[T Traceable](value T) *block[T] {
	b := &block[T]{payload: value}
	b.header.reclaim = reclaimDescriptor{
		size:    unsafe.Sizeof(*b),
		destroy: destroyBlock[T],
	}
	return b
}

// destroyBlock casts a type-erased *header back to its true *block[T] to run
// the payload's destructor, if it has one, then drops the payload so the Go
// allocator can reclaim whatever memory it referenced.
//
// This is only safe because every *header the collector ever holds was
// produced by newBlock[T] for the same T the reclaimDescriptor closes over;
// the cast never crosses that boundary.
func destroyBlock[T Traceable](h *header) {
	b := (*block[T])(unsafe.Pointer(h))
	if d, ok := any(b.payload).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	b.payload = zero
}
