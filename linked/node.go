// Package linked implements a LIFO stack and a FIFO queue over singly linked lists.
// Every operation takes constant time in the worst case.
package linked

import (
	"fmt"
	"github.com/gostonefire/collections/errs"
	"iter"
	"strings"
)

type node[T any] struct {
	item T
	next *node[T]
}

// Iterator - Is used to iterate over the nodes of a Stack or Queue one by one, following the links from the first node.
// The container must not be modified while iterating.
type Iterator[T any] struct {
	current *node[T]
}

// HasNext - Returns true if there are more items to be fetched from a call to Next.
func (I *Iterator[T]) HasNext() bool {
	return I.current != nil
}

// Next - Returns the next item.
// It returns:
//   - item is the item of the next node.
//   - err is of type errs.Underflow if there are no more items when calling this function.
func (I *Iterator[T]) Next() (item T, err error) {
	if I.current == nil {
		err = errs.NewUnderflow("iterator")
		return
	}

	item = I.current.item
	I.current = I.current.next

	return
}

// all - Returns an iter.Seq over the list starting at first
func all[T any](first *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := first; x != nil; x = x.next {
			if !yield(x.item) {
				return
			}
		}
	}
}

// join - Returns the items of the list starting at first separated by spaces
func join[T any](first *node[T]) string {
	var sb strings.Builder
	for item := range all(first) {
		_, _ = fmt.Fprintf(&sb, "%v ", item)
	}

	return sb.String()
}
