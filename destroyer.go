package gc

// Destroyer is implemented by payload types that hold resources needing
// explicit cleanup when their block is reclaimed. Sweep calls Destroy on any
// payload implementing Destroyer once it has determined the block is
// unreachable, before the block's memory becomes unreachable to the Go
// allocator.
//
// A panic inside Destroy is not recovered: it is treated as fatal, and Sweep
// does not attempt to continue sweeping past it.
type Destroyer interface {
	Destroy()
}
