package hash

import (
	"github.com/gostonefire/collections/hashfunc"
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm. It uses a hashfunc.Hasher to
// create a hash value over the key and then applies slot = (hash & 0x7fffffff) % tableSize to get the slot number.
// The table size is used as is, it does not have to be a power of two.
type LinearProbingHashAlgorithm[K any] struct {
	tableSize int64
	hasher    hashfunc.Hasher[K]
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
//   - tableSize is the initial number of slots, it is updated by the hash table on every resize
//   - hasher is the function producing hash values for keys
func NewLinearProbingHashAlgorithm[K any](tableSize int64, hasher hashfunc.Hasher[K]) *LinearProbingHashAlgorithm[K] {
	ha := &LinearProbingHashAlgorithm[K]{hasher: hasher}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (L *LinearProbingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return Reduce(L.hasher(key), L.tableSize)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (L *LinearProbingHashAlgorithm[K]) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm[K]) ProbeIteration(hf1Value, iteration int64) int64 {
	probe := hf1Value + iteration
	if probe >= L.tableSize {
		probe %= L.tableSize
	}

	return probe
}
