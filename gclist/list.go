// Package gclist is a small example of a host data structure built on top
// of package gc: a circular, doubly linked list whose nodes are managed
// blocks. It exists to exercise and demonstrate cyclic Traceable types -
// every non-empty List is, by construction, a cycle of Handles - the exact
// shape the collector's mark-and-sweep design exists to handle correctly.
//
// Unlike the teacher this package is adapted from (which eagerly Frees a
// removed node's slot back to its store), removing a node here only
// unlinks it from the ring. The node's memory is reclaimed whenever the
// host's Collector next runs Mark/Sweep and finds the node unreachable -
// there is no explicit Free in this collector's model.
package gclist

import gc "github.com/InnPatron/ms-gc"

// node is the list's managed element: the host value plus circular next/prev
// links. A List never stores a node directly, only a Handle to one.
type node[T gc.Traceable] struct {
	data T
	next gc.Handle[node[T]]
	prev gc.Handle[node[T]]
}

func (n node[T]) Trace() {
	n.data.Trace()
	n.next.Trace()
	n.prev.Trace()
}

// List is a Handle to one node in a circular, doubly linked ring - empty
// when the Handle is nil. List itself is Traceable, so a List can be
// included directly in a Collector's root set.
type List[T gc.Traceable] struct {
	origin gc.Handle[node[T]]
}

// New returns an empty List. The zero List[T] is also empty and usable;
// New exists only to make call sites read clearly, mirroring the teacher's
// own Store.NewList.
func New[T gc.Traceable]() List[T] {
	return List[T]{}
}

func (l List[T]) Trace() {
	l.origin.Trace()
}

// IsEmpty reports whether l holds any nodes. Unlike Len, it never looks
// past l's own Handle.
func (l List[T]) IsEmpty() bool {
	return l.origin.IsNil()
}

// PushHead allocates a new node via c, inserts it at the head of l, and
// returns a Handle to the new node so its data can be reached again later
// (for example to mutate it, or to root it independently of l).
func (l *List[T]) PushHead(c *gc.Collector, value T) gc.Handle[node[T]] {
	h := gc.MustAlloc(c, node[T]{data: value})
	l.linkIn(h)
	l.origin = h
	return h
}

// PushTail allocates a new node via c and inserts it at the tail of l.
func (l *List[T]) PushTail(c *gc.Collector, value T) gc.Handle[node[T]] {
	h := gc.MustAlloc(c, node[T]{data: value})
	l.linkIn(h)
	return h
}

func (l *List[T]) linkIn(newH gc.Handle[node[T]]) {
	newN := newH.Value()

	if l.origin.IsNil() {
		newN.next = newH
		newN.prev = newH
		l.origin = newH
		return
	}

	firstN := l.origin.Value()
	lastH := firstN.prev
	lastN := lastH.Value()

	lastN.next = newH
	newN.prev = lastH
	newN.next = l.origin
	firstN.prev = newH
}

// PeekHead returns the data held by the head node. It panics if l is empty.
func (l List[T]) PeekHead() *T {
	return &l.origin.Value().data
}

// PeekTail returns the data held by the tail node. It panics if l is empty.
func (l List[T]) PeekTail() *T {
	n := l.origin.Value()
	return &n.prev.Value().data
}

// RemoveHead unlinks the head node from l. The node's memory is not
// reclaimed until the next collection finds it unreachable.
func (l *List[T]) RemoveHead() {
	l.remove(l.origin)
}

// RemoveTail unlinks the tail node from l.
func (l *List[T]) RemoveTail() {
	l.remove(l.origin.Value().prev)
}

func (l *List[T]) remove(h gc.Handle[node[T]]) {
	n := h.Value()

	if n.prev == h && n.next == h {
		// h was the only node in the ring.
		*l = List[T]{}
		return
	}

	prevN := n.prev.Value()
	nextN := n.next.Value()
	prevN.next = n.next
	nextN.prev = n.prev

	if h == l.origin {
		l.origin = n.next
	}
}

// Append splices attach onto the end of l. After this call attach should no
// longer be used on its own.
func (l *List[T]) Append(attach List[T]) {
	if attach.IsEmpty() {
		return
	}
	if l.IsEmpty() {
		*l = attach
		return
	}

	lN := l.origin.Value()
	lPrev := lN.prev
	lPrevN := lPrev.Value()

	attachN := attach.origin.Value()
	attachPrev := attachN.prev
	attachPrevN := attachPrev.Value()

	lPrevN.next = attach.origin
	attachN.prev = lPrev

	attachPrevN.next = l.origin
	lN.prev = attachPrev
}

// Survey calls fun with a pointer to each node's data, in order starting
// from the head, stopping early if fun returns false. It returns true iff
// every node was visited.
func (l List[T]) Survey(fun func(data *T) bool) bool {
	if l.IsEmpty() {
		return true
	}

	origin := l.origin
	current := origin
	for {
		n := current.Value()
		if !fun(&n.data) {
			return false
		}
		current = n.next
		if current == origin {
			return true
		}
	}
}

// Len counts the nodes in l by walking the whole ring.
func (l List[T]) Len() int {
	count := 0
	l.Survey(func(_ *T) bool {
		count++
		return true
	})
	return count
}
