// Package separatechaining implements symbol tables that resolve collisions by chaining.
//
// HashST keeps a fixed number of chains (997 by default) and pushes new pairs at the head of their chain.
// It does not resize and does not support deletes. IntMap is a minimal map of int to int over 128 chains.
package separatechaining

import (
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/hashfunc"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/gostonefire/collections/internal/hash"
	"github.com/gostonefire/collections/internal/model"
	"github.com/gostonefire/collections/internal/utils"
	"iter"
)

// ChainStat - Statistics on chain lengths, see Stat
type ChainStat = model.ChainStat

type entry[K comparable, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

// HashST - A symbol table of K to V over a fixed number of singly linked chains
type HashST[K comparable, V any] struct {
	chains        []*entry[K, V]
	n             int64
	hashAlgorithm hashfunc.HashAlgorithm[K]
	nillableKey   bool
	nillableValue bool
}

// New - Returns a pointer to a new empty HashST with conf.DefaultChains chains, hashing keys with hashfunc.Default
func New[K comparable, V any]() *HashST[K, V] {
	st, _ := NewWithChains[K, V](conf.DefaultChains, nil)
	return st
}

// NewWithChains - Returns a pointer to a new empty HashST.
//   - chains is the number of chains, it must be at least 1
//   - hashAlgorithm is an optional custom chain selection algorithm, if nil keys are hashed with hashfunc.Default. Its table size is overwritten with chains.
//
// It returns:
//   - st is a pointer to the created HashST
//   - err is of type errs.InvalidArgument if chains is less than 1
func NewWithChains[K comparable, V any](chains int64, hashAlgorithm hashfunc.HashAlgorithm[K]) (st *HashST[K, V], err error) {
	if chains < 1 {
		err = errs.NewInvalidArgument("number of chains must be at least 1, got %d", chains)
		return
	}

	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeparateChainingHashAlgorithm[K](chains, hashfunc.Default[K]())
	} else {
		hashAlgorithm.SetTableSize(chains)
	}

	st = &HashST[K, V]{
		chains:        make([]*entry[K, V], chains),
		hashAlgorithm: hashAlgorithm,
		nillableKey:   utils.IsNillable[K](),
		nillableValue: utils.IsNillable[V](),
	}

	return
}

// Size - Returns the number of key-value pairs in the table
func (H *HashST[K, V]) Size() int64 {
	return H.n
}

// IsEmpty - Returns true if the table holds no pairs
func (H *HashST[K, V]) IsEmpty() bool {
	return H.n == 0
}

// Get - Returns the value associated with key.
// It returns:
//   - value is the associated value, or the zero value of V if not found
//   - found is false if the key is not in the table
//   - err is of type errs.InvalidArgument if key is nil
func (H *HashST[K, V]) Get(key K) (value V, found bool, err error) {
	if H.nillableKey && utils.IsNil(key) {
		err = errs.NewInvalidArgument("argument to get() is nil")
		return
	}

	for x := H.chains[H.hashAlgorithm.HashFunc1(key)]; x != nil; x = x.next {
		if x.key == key {
			return x.val, true, nil
		}
	}

	return
}

// Contains - Returns true if the table holds a value for key
func (H *HashST[K, V]) Contains(key K) (found bool, err error) {
	_, found, err = H.Get(key)
	return
}

// Put - Inserts the key-value pair, overwriting the value if the key is already present.
// New pairs are pushed at the head of their chain. A nil value (for nillable V) is a delete request, which is
// not supported.
//
// It returns:
//   - err is of type errs.InvalidArgument if key is nil, or errs.Unsupported if value is nil
func (H *HashST[K, V]) Put(key K, value V) (err error) {
	if H.nillableKey && utils.IsNil(key) {
		err = errs.NewInvalidArgument("first argument to put() is nil")
		return
	}
	if H.nillableValue && utils.IsNil(value) {
		return H.Delete(key)
	}

	i := H.hashAlgorithm.HashFunc1(key)
	for x := H.chains[i]; x != nil; x = x.next {
		if x.key == key {
			x.val = value
			return
		}
	}

	H.chains[i] = &entry[K, V]{key: key, val: value, next: H.chains[i]}
	H.n++

	return
}

// Delete - Always returns errs.Unsupported, pairs can not be removed from a HashST
func (H *HashST[K, V]) Delete(key K) error {
	return errs.NewUnsupported("delete")
}

// Keys - Returns an iter.Seq over all keys, chain by chain and from the head of each chain
func (H *HashST[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, first := range H.chains {
			for x := first; x != nil; x = x.next {
				if !yield(x.key) {
					return
				}
			}
		}
	}
}

// Stat - Walks through every chain and produces a ChainStat
func (H *HashST[K, V]) Stat() (stat ChainStat) {
	stat.Pairs = H.n
	stat.Chains = int64(len(H.chains))

	for _, first := range H.chains {
		var length int64
		for x := first; x != nil; x = x.next {
			length++
		}
		if length == 0 {
			stat.EmptyChains++
		}
		stat.LongestChain = max(stat.LongestChain, length)
	}

	return
}
