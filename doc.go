// Package gc is a small, embeddable tracing garbage collector for
// heap-allocated objects whose reference graph may contain cycles.
//
// A Collector owns a singly linked list of allocated blocks. Each block is a
// header (mark bit, list link, reclaim descriptor) immediately followed by a
// payload value. A Handle[T] is a copyable, non-owning reference to one such
// block; dereferencing a Handle gives read access to its payload.
//
//	c := gc.New()
//	h := gc.MustAlloc(c, gc.Int(5))
//	gc.Mark([]gc.Traceable{h})
//	c.Sweep()
//
// The host is responsible for two things this package deliberately does not
// do: deciding when to collect, and supplying a complete root set on each
// collection. Any live block not reachable from the supplied roots is
// reclaimed, whether or not the host still holds a Handle to it.
//
// Every payload type stored in a Collector must implement Traceable. Built-in
// implementations are provided for scalars (via NoTrace and its wrappers),
// ordered sequences (Slice), optional values (Optional), an interior-mutable
// box (Cell) and Handle itself.
//
// A Collector is not safe for concurrent use. Exactly one goroutine may
// allocate, trace, dereference or collect a given Collector and its Handles
// at a time.
package gc
