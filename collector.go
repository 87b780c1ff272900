package gc

// Collector owns the intrusive singly linked list of live allocations. It
// must outlive every Handle derived from it; nothing about Handle's
// lifetime is checked against the Collector it came from, so the host is
// responsible for that ordering.
//
// A Collector is not safe for concurrent use.
type Collector struct {
	head *header
	tail *header

	cfg Config

	allocs    int
	reclaimed int
	live      int
	liveBytes int
}

// New returns an empty, unbounded Collector.
func New() *Collector {
	return NewWithConfig(Config{})
}

// NewWithConfig returns an empty Collector bounded by cfg.
func NewWithConfig(cfg Config) *Collector {
	return &Collector{cfg: cfg}
}

// Alloc allocates a block holding value, appends it to c's allocation list,
// and returns a Handle to it.
//
// If c was constructed with a Config that bounds MaxLive or MaxBytes, and
// servicing this allocation would exceed either bound, Alloc returns
// ErrAllocationExhausted and c is left unchanged.
func Alloc[T Traceable](c *Collector, value T) (Handle[T], error) {
	b := newBlock(value)
	size := int(b.header.reclaim.size)

	if maxLive := c.cfg.getMaxLive(); maxLive > 0 && c.live+1 > maxLive {
		return Handle[T]{}, ErrAllocationExhausted
	}
	if maxBytes := c.cfg.getMaxBytes(); maxBytes > 0 && c.liveBytes+size > maxBytes {
		return Handle[T]{}, ErrAllocationExhausted
	}

	h := &b.header
	if c.tail == nil {
		c.head = h
		c.tail = h
	} else {
		c.tail.next = h
		c.tail = h
	}

	c.allocs++
	c.live++
	c.liveBytes += size

	return Handle[T]{block: b}, nil
}

// MustAlloc is Alloc without the error return, for callers using an
// unbounded Collector (New()) where allocation exhaustion cannot occur.
// MustAlloc panics if Alloc fails.
func MustAlloc[T Traceable](c *Collector, value T) Handle[T] {
	h, err := Alloc(c, value)
	if err != nil {
		panic(err)
	}
	return h
}

// Mark traces every root, and transitively every block reachable from a
// root. On return, every block transitively reachable from any root has its
// mark bit set; unreachable blocks are untouched. The caller is responsible
// for the completeness of the root set - any live block not reachable from
// roots will be reclaimed by a following Sweep.
//
// Mark operates purely on the graph reachable from roots; it takes no
// Collector, because marks live inside the blocks themselves, not in any
// Collector-held state.
func Mark(roots []Traceable) {
	for _, root := range roots {
		if root == nil {
			continue
		}
		root.Trace()
	}
}

// Sweep walks c's allocation list exactly once. Every block whose mark bit
// is set survives with its mark bit cleared (restoring quiescence);
// every unmarked block is unlinked, has its payload's Destroy method called
// (if it implements Destroyer), and is then left to the Go allocator for
// actual reclamation.
func (c *Collector) Sweep() {
	var pred *header
	current := c.head

	for current != nil {
		if current.mark {
			current.mark = false
			pred = current
			current = current.next
			continue
		}

		next := current.next
		if pred != nil {
			pred.next = next
		} else {
			c.head = next
		}
		if current == c.tail {
			c.tail = pred
		}

		size := int(current.reclaim.size)
		current.reclaim.destroy(current)

		c.reclaimed++
		c.live--
		c.liveBytes -= size

		current = next
	}
}

// Stats returns c's current allocation statistics.
func (c *Collector) Stats() Stats {
	return Stats{
		Allocs:    c.allocs,
		Reclaimed: c.reclaimed,
		Live:      c.live,
		LiveBytes: c.liveBytes,
	}
}
