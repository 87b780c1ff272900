package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// node is a small Traceable host type used throughout these tests to build
// linear chains and cycles: a payload plus one mutable, optional outgoing
// edge, stored in a Cell the same way the original circular-reference test
// uses a RefCell<Option<GCObj<Circular>>>.
type node struct {
	id   int
	next Cell[Optional[Handle[node]]]
}

func (n node) Trace() {
	n.next.Get().Trace()
}

var _ Traceable = node{}

func newNode(id int) node {
	return node{id: id, next: NewCell(None[Handle[node]]())}
}

func (n *node) setNext(h Handle[node]) {
	n.next.Set(Some(h))
}

func Test_Collector_SimpleCleanup(t *testing.T) {
	c := New()

	MustAlloc(c, Int(5))
	MustAlloc(c, Int(10))
	MustAlloc(c, Int(15))

	require.Equal(t, 3, c.Stats().Live)

	c.Sweep()

	stats := c.Stats()
	assert.Equal(t, 0, stats.Live)
	assert.Equal(t, 3, stats.Reclaimed)
	assert.Nil(t, c.head)
	assert.Nil(t, c.tail)
}

func Test_Collector_SingleSurvivor(t *testing.T) {
	c := New()

	_ = MustAlloc(c, Int(1))
	b := MustAlloc(c, Int(2))
	_ = MustAlloc(c, Int(3))

	Mark([]Traceable{b})
	c.Sweep()

	assert.Equal(t, 1, c.Stats().Live)
	assert.False(t, b.block.header.mark)
	assert.Equal(t, Int(2), *b.Value())
}

func Test_Collector_TwoNodeCycle_FullyRooted(t *testing.T) {
	c := New()

	h1 := MustAlloc(c, newNode(1))
	h2 := MustAlloc(c, newNode(2))

	h1.Value().setNext(h2)
	h2.Value().setNext(h1)

	Mark([]Traceable{h1, h2})
	c.Sweep()
	assert.Equal(t, 2, c.Stats().Live)

	Mark([]Traceable{h1})
	c.Sweep()
	assert.Equal(t, 2, c.Stats().Live, "h1 reaches h2 through the cycle")

	Mark(nil)
	c.Sweep()
	assert.Equal(t, 0, c.Stats().Live)
}

func Test_Collector_LinearChain(t *testing.T) {
	const n = 50
	c := New()

	handles := make([]Handle[node], n)
	for i := n - 1; i >= 0; i-- {
		h := MustAlloc(c, newNode(i))
		if i < n-1 {
			h.Value().setNext(handles[i+1])
		}
		handles[i] = h
	}

	Mark([]Traceable{handles[0]})
	c.Sweep()
	assert.Equal(t, n, c.Stats().Live)

	Mark(nil)
	c.Sweep()
	assert.Equal(t, 0, c.Stats().Live)
}

func Test_Collector_RepeatedCollection_NoLeaks(t *testing.T) {
	c := New()

	for iter := 0; iter < 20; iter++ {
		for i := 0; i < 100; i++ {
			MustAlloc(c, Int(i))
		}
		Mark(nil)
		c.Sweep()
		require.Equal(t, 0, c.Stats().Live)
	}
}

func Test_Collector_MixedSurvivorsAndCycles(t *testing.T) {
	c := New()

	h1 := MustAlloc(c, newNode(1))
	h2 := MustAlloc(c, newNode(2))
	h3 := MustAlloc(c, newNode(3))
	h1.Value().setNext(h2)
	h2.Value().setNext(h3)
	h3.Value().setNext(h1)

	x := MustAlloc(c, Int(99))

	Mark([]Traceable{x})
	c.Sweep()

	assert.Equal(t, 1, c.Stats().Live)
	assert.NotPanics(t, func() { _ = *x.Value() })
}

func Test_Collector_Idempotence(t *testing.T) {
	c := New()

	a := MustAlloc(c, Int(1))
	b := MustAlloc(c, Int(2))

	Mark([]Traceable{a})
	c.Sweep()
	first := c.Stats()

	Mark([]Traceable{a})
	c.Sweep()
	second := c.Stats()

	assert.Equal(t, first.Live, second.Live)
	assert.NotPanics(t, func() { _ = *a.Value() })
	_ = b
}

type destroyCounter struct {
	NoTrace
	destroyed *int
}

func (d destroyCounter) Destroy() {
	*d.destroyed++
}

func Test_Collector_Sweep_RunsDestructor(t *testing.T) {
	c := New()
	count := 0

	MustAlloc(c, destroyCounter{destroyed: &count})
	c.Sweep()

	assert.Equal(t, 1, count)
}

func Test_Collector_Alloc_AllocationExhausted(t *testing.T) {
	c := NewWithConfig(Config{MaxLive: 2})

	_, err1 := Alloc(c, Int(1))
	_, err2 := Alloc(c, Int(2))
	_, err3 := Alloc(c, Int(3))

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.ErrorIs(t, err3, ErrAllocationExhausted)
	assert.Equal(t, 2, c.Stats().Live)
}

func Test_Collector_Alloc_MaxBytesExhausted(t *testing.T) {
	c := NewWithConfig(Config{MaxBytes: 1})

	_, err := Alloc(c, Int(1))
	require.ErrorIs(t, err, ErrAllocationExhausted)
	assert.Equal(t, 0, c.Stats().Live)
}
