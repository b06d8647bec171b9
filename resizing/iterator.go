package resizing

import (
	"github.com/gostonefire/collections/errs"
	"iter"
)

// Iterator - Is used to iterate over the items of a Stack or Queue one by one in logical order.
// The container must not be modified while iterating.
type Iterator[T any] struct {
	at    func(i int) T
	i     int
	count int
}

// newIterator - Returns a pointer to a new Iterator over count items fetched through at
func newIterator[T any](count int, at func(i int) T) *Iterator[T] {
	return &Iterator[T]{
		at:    at,
		count: count,
	}
}

// HasNext - Returns true if there are more items to be fetched from a call to Next.
func (I *Iterator[T]) HasNext() bool {
	return I.i < I.count
}

// Next - Returns the next item.
// It returns:
//   - item is the next item in logical order.
//   - err is of type errs.Underflow if there are no more items when calling this function.
func (I *Iterator[T]) Next() (item T, err error) {
	if !I.HasNext() {
		err = errs.NewUnderflow("iterator")
		return
	}

	item = I.at(I.i)
	I.i++

	return
}

// seq - Wraps a fresh iterator constructor in an iter.Seq, every range over it starts from the front
func seq[T any](newIter func() *Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := newIter(); it.HasNext(); {
			item, _ := it.Next()
			if !yield(item) {
				return
			}
		}
	}
}
