// Package resizing implements a LIFO stack and a FIFO queue over resizing arrays.
//
// Both double their backing array when it is full and halve it when it drops to one quarter full,
// so push and pop run in amortized constant time and the array is always between 25% and 100% full
// (except for the minimum capacity of 2). Peek, Size and IsEmpty run in constant time.
package resizing

import (
	"fmt"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/gostonefire/collections/internal/utils"
	"iter"
	"strings"
)

// Stack - A last-in-first-out stack backed by a resizing array
type Stack[T any] struct {
	items []T
	n     int
}

// NewStack - Returns a pointer to a new empty Stack with capacity conf.MinArrayCapacity
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{items: make([]T, conf.MinArrayCapacity)}
}

// Size - Returns the number of items on the stack
func (S *Stack[T]) Size() int {
	return S.n
}

// IsEmpty - Returns true if the stack holds no items
func (S *Stack[T]) IsEmpty() bool {
	return S.n == 0
}

// Cap - Returns the length of the backing array
func (S *Stack[T]) Cap() int {
	return len(S.items)
}

// Push - Adds item to the top of the stack, doubling the backing array first if it is full
func (S *Stack[T]) Push(item T) {
	if S.n == len(S.items) {
		S.resize(utils.GrowCapacity(len(S.items)))
	}
	S.items[S.n] = item
	S.n++
}

// Pop - Removes and returns the most recently pushed item.
// It returns:
//   - item is the removed item
//   - err is of type errs.Underflow if the stack is empty, in which case the stack is left unchanged
func (S *Stack[T]) Pop() (item T, err error) {
	if S.IsEmpty() {
		err = errs.NewUnderflow("stack")
		return
	}

	S.n--
	item = S.items[S.n]
	var zero T
	S.items[S.n] = zero

	if newCap, shrink := utils.ShrinkCapacity(S.n, len(S.items)); shrink {
		S.resize(newCap)
	}

	return
}

// Peek - Returns the most recently pushed item without removing it, or errs.Underflow if the stack is empty
func (S *Stack[T]) Peek() (item T, err error) {
	if S.IsEmpty() {
		err = errs.NewUnderflow("stack")
		return
	}

	return S.items[S.n-1], nil
}

// Iterator - Returns an Iterator over the items from the top of the stack to the bottom
func (S *Stack[T]) Iterator() *Iterator[T] {
	top := S.n - 1
	return newIterator(S.n, func(i int) T { return S.items[top-i] })
}

// All - Returns an iter.Seq over the items from the top of the stack to the bottom
func (S *Stack[T]) All() iter.Seq[T] {
	return seq(S.Iterator)
}

// String - Returns the items from top to bottom separated by spaces
func (S *Stack[T]) String() string {
	var sb strings.Builder
	for item := range S.All() {
		_, _ = fmt.Fprintf(&sb, "%v ", item)
	}

	return sb.String()
}

// resize - Moves the items to a new backing array of the given capacity
func (S *Stack[T]) resize(capacity int) {
	items := make([]T, capacity)
	copy(items, S.items[:S.n])
	S.items = items
}
