package gc

import "fmt"

// Handle is a small, freely copyable, non-owning reference to a managed
// block. Copying a Handle creates another reference to the same block;
// Handles never ref-count and do not extend the block's lifetime by
// existing - lifetime is determined solely by reachability at the next
// collection.
//
// The zero Handle[T] refers to no block and must not be dereferenced;
// tracing it is a no-op.
type Handle[T Traceable] struct {
	block *block[T]
}

// IsNil reports whether h refers to no block.
func (h Handle[T]) IsNil() bool {
	return h.block == nil
}

// Value returns a pointer to the referenced payload. The returned pointer is
// valid only as long as the block has not been reclaimed by a collection
// that did not find this Handle (transitively) in the root set.
//
// Value panics if h is the zero Handle.
func (h Handle[T]) Value() *T {
	if h.block == nil {
		panic(fmt.Errorf("gc: Value called on nil Handle[%T]", *new(T)))
	}
	return &h.block.payload
}

// Trace is the cycle-breaker for the entire collector: a back-edge to an
// already-marked block is a no-op, which is what makes marking terminate on
// a reference graph containing cycles.
//
//  1. If the block is already marked, return immediately.
//  2. Otherwise mark it, then trace the payload - discovering whatever it
//     reaches.
//
// Trace does nothing on the zero Handle.
func (h Handle[T]) Trace() {
	if h.block == nil {
		return
	}
	if h.block.header.mark {
		return
	}
	h.block.header.mark = true
	h.block.payload.Trace()
}
