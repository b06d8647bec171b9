// Package pq implements max priority queues over arrays.
//
// OrderedArrayMaxPQ keeps its keys sorted, so Insert shifts larger keys one step up like insertion sort while
// Max and DelMax take the last key in constant time. UnorderedArrayMaxPQ appends on Insert in constant time and
// selects the largest key on Max and DelMax in linear time.
package pq

import (
	"github.com/gostonefire/collections/errs"
	"golang.org/x/exp/constraints"
)

// OrderedArrayMaxPQ - A max priority queue keeping its keys in ascending order
type OrderedArrayMaxPQ[K constraints.Ordered] struct {
	keys []K
}

// NewOrderedArrayMaxPQ - Returns a pointer to a new empty OrderedArrayMaxPQ with room for capacity keys before it
// has to grow. A negative capacity is treated as 0.
func NewOrderedArrayMaxPQ[K constraints.Ordered](capacity int) *OrderedArrayMaxPQ[K] {
	return &OrderedArrayMaxPQ[K]{keys: make([]K, 0, max(capacity, 0))}
}

// Size - Returns the number of keys in the queue
func (O *OrderedArrayMaxPQ[K]) Size() int {
	return len(O.keys)
}

// IsEmpty - Returns true if the queue holds no keys
func (O *OrderedArrayMaxPQ[K]) IsEmpty() bool {
	return len(O.keys) == 0
}

// Insert - Adds key, moving every larger key one position up
func (O *OrderedArrayMaxPQ[K]) Insert(key K) {
	O.keys = append(O.keys, key)

	i := len(O.keys) - 2
	for i >= 0 && key < O.keys[i] {
		O.keys[i+1] = O.keys[i]
		i--
	}
	O.keys[i+1] = key
}

// Max - Returns the largest key without removing it, or errs.Underflow if the queue is empty
func (O *OrderedArrayMaxPQ[K]) Max() (key K, err error) {
	if O.IsEmpty() {
		err = errs.NewUnderflow("priority queue")
		return
	}

	return O.keys[len(O.keys)-1], nil
}

// DelMax - Removes and returns the largest key, or errs.Underflow if the queue is empty
func (O *OrderedArrayMaxPQ[K]) DelMax() (key K, err error) {
	if O.IsEmpty() {
		err = errs.NewUnderflow("priority queue")
		return
	}

	last := len(O.keys) - 1
	key = O.keys[last]
	var zero K
	O.keys[last] = zero
	O.keys = O.keys[:last]

	return
}
