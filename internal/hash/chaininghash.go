package hash

import (
	"github.com/gostonefire/collections/hashfunc"
)

// SeparateChainingHashAlgorithm - Selects the chain for a key by applying chain = (hash & 0x7fffffff) % tableSize.
// It implements hashfunc.HashAlgorithm, but ProbeIteration is never used since collisions are resolved by chaining.
type SeparateChainingHashAlgorithm[K any] struct {
	tableSize int64
	hasher    hashfunc.Hasher[K]
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm[K any](tableSize int64, hasher hashfunc.Hasher[K]) *SeparateChainingHashAlgorithm[K] {
	ha := &SeparateChainingHashAlgorithm[K]{hasher: hasher}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of chains the table will address
func (O *SeparateChainingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	O.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (chain) between 0 and table size - 1
func (O *SeparateChainingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return Reduce(O.hasher(key), O.tableSize)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (O *SeparateChainingHashAlgorithm[K]) GetTableSize() int64 {
	return O.tableSize
}

// ProbeIteration - Not used in separate chaining collision resolution, always returns the home chain
func (O *SeparateChainingHashAlgorithm[K]) ProbeIteration(hf1Value, iteration int64) int64 {
	return hf1Value
}
