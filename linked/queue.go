package linked

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/invariants"
	"iter"
)

// Queue - A first-in-first-out queue of items in a singly linked list, items are enqueued after last and
// dequeued from first
type Queue[T any] struct {
	first *node[T]
	last  *node[T]
	n     int
}

// NewQueue - Returns a pointer to a new empty Queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Size - Returns the number of items in the queue
func (Q *Queue[T]) Size() int {
	return Q.n
}

// IsEmpty - Returns true if the queue holds no items
func (Q *Queue[T]) IsEmpty() bool {
	return Q.first == nil
}

// Enqueue - Adds item to the back of the queue
func (Q *Queue[T]) Enqueue(item T) {
	oldLast := Q.last
	Q.last = &node[T]{item: item}
	if Q.IsEmpty() {
		Q.first = Q.last
	} else {
		oldLast.next = Q.last
	}
	Q.n++

	invariants.Check(Q.check)
}

// Dequeue - Removes and returns the least recently added item, or errs.Underflow if the queue is empty
func (Q *Queue[T]) Dequeue() (item T, err error) {
	if Q.IsEmpty() {
		err = errs.NewUnderflow("queue")
		return
	}

	item = Q.first.item
	Q.first = Q.first.next
	Q.n--
	if Q.IsEmpty() {
		Q.last = nil
	}

	invariants.Check(Q.check)

	return
}

// Peek - Returns the least recently added item without removing it, or errs.Underflow if the queue is empty
func (Q *Queue[T]) Peek() (item T, err error) {
	if Q.IsEmpty() {
		err = errs.NewUnderflow("queue")
		return
	}

	return Q.first.item, nil
}

// Iterator - Returns an Iterator over the items from the front of the queue to the back
func (Q *Queue[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{current: Q.first}
}

// All - Returns an iter.Seq over the items from the front of the queue to the back
func (Q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		all(Q.first)(yield)
	}
}

// String - Returns the items from front to back separated by spaces
func (Q *Queue[T]) String() string {
	return join(Q.first)
}

// check - Verifies the consistency of first, last and the count
func (Q *Queue[T]) check() error {
	switch {
	case Q.n < 0:
		return errors.AssertionFailedf("negative count %d", Q.n)

	case Q.n == 0:
		if Q.first != nil || Q.last != nil {
			return errors.AssertionFailedf("empty queue with dangling first or last node")
		}

	case Q.n == 1:
		if Q.first == nil || Q.first != Q.last || Q.first.next != nil {
			return errors.AssertionFailedf("single item queue must have first == last and no next")
		}

	default:
		if Q.first == nil || Q.last == nil || Q.first == Q.last || Q.last.next != nil {
			return errors.AssertionFailedf("queue of %d items has inconsistent first or last node", Q.n)
		}

		var nodes int
		lastNode := Q.first
		for x := Q.first; x != nil && nodes <= Q.n; x = x.next {
			nodes++
			lastNode = x
		}
		if nodes != Q.n {
			return errors.AssertionFailedf("%d linked nodes but a count of %d", nodes, Q.n)
		}
		if lastNode != Q.last {
			return errors.AssertionFailedf("last does not point to the final node")
		}
	}

	return nil
}
