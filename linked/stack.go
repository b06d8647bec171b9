package linked

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/invariants"
	"iter"
)

// Stack - A last-in-first-out stack of items in a singly linked list, the first node is the top
type Stack[T any] struct {
	first *node[T]
	n     int
}

// NewStack - Returns a pointer to a new empty Stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Size - Returns the number of items on the stack
func (S *Stack[T]) Size() int {
	return S.n
}

// IsEmpty - Returns true if the stack holds no items
func (S *Stack[T]) IsEmpty() bool {
	return S.first == nil
}

// Push - Adds item to the top of the stack
func (S *Stack[T]) Push(item T) {
	S.first = &node[T]{item: item, next: S.first}
	S.n++

	invariants.Check(S.check)
}

// Pop - Removes and returns the most recently pushed item, or errs.Underflow if the stack is empty
func (S *Stack[T]) Pop() (item T, err error) {
	if S.IsEmpty() {
		err = errs.NewUnderflow("stack")
		return
	}

	item = S.first.item
	S.first = S.first.next
	S.n--

	invariants.Check(S.check)

	return
}

// Peek - Returns the most recently pushed item without removing it, or errs.Underflow if the stack is empty
func (S *Stack[T]) Peek() (item T, err error) {
	if S.IsEmpty() {
		err = errs.NewUnderflow("stack")
		return
	}

	return S.first.item, nil
}

// Iterator - Returns an Iterator over the items from the top of the stack to the bottom
func (S *Stack[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{current: S.first}
}

// All - Returns an iter.Seq over the items from the top of the stack to the bottom
func (S *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		all(S.first)(yield)
	}
}

// String - Returns the items from top to bottom separated by spaces
func (S *Stack[T]) String() string {
	return join(S.first)
}

// check - Verifies that the count matches the number of linked nodes
func (S *Stack[T]) check() error {
	if S.n < 0 {
		return errors.AssertionFailedf("negative count %d", S.n)
	}
	if (S.n == 0) != (S.first == nil) {
		return errors.AssertionFailedf("count %d disagrees with first node %v", S.n, S.first != nil)
	}

	var nodes int
	for x := S.first; x != nil && nodes <= S.n; x = x.next {
		nodes++
	}
	if nodes != S.n {
		return errors.AssertionFailedf("%d linked nodes but a count of %d", nodes, S.n)
	}

	return nil
}
