package hashfunc

// HashAlgorithm - Interface that permits an implementation using the linear probing HashTable to supply a custom
// slot selection algorithm suited for its particular distribution of keys.
type HashAlgorithm[K any] interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the hash table is created and every time it is resized. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten by the number of slots of the hash table.
	//   - tableSize is the number of slots the hash table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in a panic down stream.
	HashFunc1(key K) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in iteration given the value from HashFunc1.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash value
	// from HashFunc1 is the same throughout iterations for one key, the function takes that value rather than
	// using the actual key as input.
	// Deleting by cluster rehash relies on the probe sequence being linear, i.e. iteration i visits
	// (hf1Value + i) mod table size.
	ProbeIteration(hf1Value, iteration int64) int64
}
