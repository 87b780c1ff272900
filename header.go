package gc

// header is the fixed-size prefix of every managed block. It is always the
// first field of a block[T] (see block.go), so a *header and the address of
// the block[T] it came from are interconvertible: Go guarantees the address
// of a struct equals the address of its first field, the same layout
// guarantee the original #[repr(C)] Obj<T> relied on.
//
// head/tail in Collector only ever hold *header, never *block[T] - this is
// how the allocation list stays type-erased across every distinct payload
// type ever allocated.
type header struct {
	mark    bool
	next    *header
	reclaim reclaimDescriptor
}

// reclaimDescriptor lets sweep tear down a block through a pointer that has
// forgotten the payload's static type: it can both run the destructor and
// report how many bytes the block occupied.
type reclaimDescriptor struct {
	size    uintptr
	destroy func(h *header)
}
