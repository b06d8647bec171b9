package pq

import (
	"github.com/gostonefire/collections/errs"
	"golang.org/x/exp/constraints"
)

// UnorderedArrayMaxPQ - A max priority queue keeping its keys in insertion order
type UnorderedArrayMaxPQ[K constraints.Ordered] struct {
	keys []K
}

// NewUnorderedArrayMaxPQ - Returns a pointer to a new empty UnorderedArrayMaxPQ with room for capacity keys
// before it has to grow. A negative capacity is treated as 0.
func NewUnorderedArrayMaxPQ[K constraints.Ordered](capacity int) *UnorderedArrayMaxPQ[K] {
	return &UnorderedArrayMaxPQ[K]{keys: make([]K, 0, max(capacity, 0))}
}

// Size - Returns the number of keys in the queue
func (U *UnorderedArrayMaxPQ[K]) Size() int {
	return len(U.keys)
}

// IsEmpty - Returns true if the queue holds no keys
func (U *UnorderedArrayMaxPQ[K]) IsEmpty() bool {
	return len(U.keys) == 0
}

// Insert - Appends key
func (U *UnorderedArrayMaxPQ[K]) Insert(key K) {
	U.keys = append(U.keys, key)
}

// Max - Returns the largest key without removing it, or errs.Underflow if the queue is empty
func (U *UnorderedArrayMaxPQ[K]) Max() (key K, err error) {
	if U.IsEmpty() {
		err = errs.NewUnderflow("priority queue")
		return
	}

	return U.keys[U.maxIndex()], nil
}

// DelMax - Removes and returns the largest key, or errs.Underflow if the queue is empty.
// The largest key is exchanged with the last one before it is removed.
func (U *UnorderedArrayMaxPQ[K]) DelMax() (key K, err error) {
	if U.IsEmpty() {
		err = errs.NewUnderflow("priority queue")
		return
	}

	last := len(U.keys) - 1
	m := U.maxIndex()
	U.keys[m], U.keys[last] = U.keys[last], U.keys[m]

	key = U.keys[last]
	var zero K
	U.keys[last] = zero
	U.keys = U.keys[:last]

	return
}

// maxIndex - Returns the index of the first occurrence of the largest key, the queue must not be empty
func (U *UnorderedArrayMaxPQ[K]) maxIndex() (m int) {
	for i := 1; i < len(U.keys); i++ {
		if U.keys[m] < U.keys[i] {
			m = i
		}
	}

	return
}
