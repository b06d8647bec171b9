package resizing

import (
	"fmt"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/gostonefire/collections/internal/ring"
	"github.com/gostonefire/collections/internal/utils"
	"iter"
	"strings"
)

// Queue - A first-in-first-out queue backed by a resizing circular array.
// Live items occupy the window [head, head+n) mod capacity.
type Queue[T any] struct {
	items  []T
	window ring.Window
}

// NewQueue - Returns a pointer to a new empty Queue with capacity conf.MinArrayCapacity
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		items:  make([]T, conf.MinArrayCapacity),
		window: ring.Window{Cap: conf.MinArrayCapacity},
	}
}

// Size - Returns the number of items in the queue
func (Q *Queue[T]) Size() int {
	return Q.window.Len
}

// IsEmpty - Returns true if the queue holds no items
func (Q *Queue[T]) IsEmpty() bool {
	return Q.window.Empty()
}

// Cap - Returns the length of the backing array
func (Q *Queue[T]) Cap() int {
	return len(Q.items)
}

// Enqueue - Adds item to the back of the queue, doubling the backing array first if it is full
func (Q *Queue[T]) Enqueue(item T) {
	if Q.window.Full() {
		Q.resize(utils.GrowCapacity(len(Q.items)))
	}
	Q.items[Q.window.PushBack()] = item
}

// Dequeue - Removes and returns the least recently added item.
// It returns:
//   - item is the removed item
//   - err is of type errs.Underflow if the queue is empty, in which case the queue is left unchanged
func (Q *Queue[T]) Dequeue() (item T, err error) {
	if Q.IsEmpty() {
		err = errs.NewUnderflow("queue")
		return
	}

	i := Q.window.PopFront()
	item = Q.items[i]
	var zero T
	Q.items[i] = zero

	if newCap, shrink := utils.ShrinkCapacity(Q.window.Len, len(Q.items)); shrink {
		Q.resize(newCap)
	}

	return
}

// Peek - Returns the least recently added item without removing it, or errs.Underflow if the queue is empty
func (Q *Queue[T]) Peek() (item T, err error) {
	if Q.IsEmpty() {
		err = errs.NewUnderflow("queue")
		return
	}

	return Q.items[Q.window.Head], nil
}

// Iterator - Returns an Iterator over the items from the front of the queue to the back
func (Q *Queue[T]) Iterator() *Iterator[T] {
	w := Q.window
	return newIterator(w.Len, func(i int) T { return Q.items[w.Index(i)] })
}

// All - Returns an iter.Seq over the items from the front of the queue to the back
func (Q *Queue[T]) All() iter.Seq[T] {
	return seq(Q.Iterator)
}

// String - Returns the items from front to back separated by spaces
func (Q *Queue[T]) String() string {
	var sb strings.Builder
	for item := range Q.All() {
		_, _ = fmt.Fprintf(&sb, "%v ", item)
	}

	return sb.String()
}

// resize - Moves the live window to the start of a new backing array of the given capacity
func (Q *Queue[T]) resize(capacity int) {
	items := make([]T, capacity)
	Q.window = ring.Unwrap(Q.window, Q.items, items)
	Q.items = items
}
