// Package linearprobing implements a symbol table with a linear probing hash table.
//
// Keys live directly in a slot array. The table doubles before it becomes half full and halves when it drops to
// one eighth full, so a lookup scans a short cluster and put, get and delete run in amortized constant time.
// Deleting a key does not leave a tombstone behind, instead every key in the rest of the cluster is reinserted
// so that no probe sequence is ever cut short by the freed slot.
package linearprobing

import (
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/hashfunc"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/gostonefire/collections/internal/hash"
	"github.com/gostonefire/collections/internal/invariants"
	"github.com/gostonefire/collections/internal/model"
	"github.com/gostonefire/collections/internal/utils"
	"iter"
)

// TableStat - Statistics on the overall usage and clustering of the table, see Stat
type TableStat = model.TableStat

// HashTable - A symbol table of K to V resolving collisions by linear probing
type HashTable[K comparable, V any] struct {
	keys          []K
	vals          []V
	used          []bool
	n             int64
	hashAlgorithm hashfunc.HashAlgorithm[K]
	nillableKey   bool
	nillableValue bool
}

// New - Returns a pointer to a new empty HashTable with conf.InitialTableCapacity slots, hashing keys with
// hashfunc.Default
func New[K comparable, V any]() *HashTable[K, V] {
	ht, _ := NewWithHasher[K, V](conf.InitialTableCapacity, hashfunc.Default[K]())
	return ht
}

// NewWithHasher - Returns a pointer to a new empty HashTable using the internal linear probing algorithm over the
// given hasher.
//   - capacity is the initial number of slots, it must be at least 1
//   - hasher produces the hash values for keys
//
// It returns:
//   - ht is a pointer to the created HashTable
//   - err is of type errs.InvalidArgument if capacity is less than 1 or hasher is nil
func NewWithHasher[K comparable, V any](capacity int64, hasher hashfunc.Hasher[K]) (ht *HashTable[K, V], err error) {
	if hasher == nil {
		err = errs.NewInvalidArgument("hasher is nil")
		return
	}

	return NewWithCapacity[K, V](capacity, hash.NewLinearProbingHashAlgorithm[K](capacity, hasher))
}

// NewWithCapacity - Returns a pointer to a new empty HashTable.
//   - capacity is the initial number of slots, it must be at least 1
//   - hashAlgorithm is an optional custom slot selection algorithm, if nil the internal linear probing algorithm over hashfunc.Default is used. Its table size is overwritten with capacity.
//
// It returns:
//   - ht is a pointer to the created HashTable
//   - err is of type errs.InvalidArgument if capacity is less than 1
func NewWithCapacity[K comparable, V any](capacity int64, hashAlgorithm hashfunc.HashAlgorithm[K]) (ht *HashTable[K, V], err error) {
	if capacity < 1 {
		err = errs.NewInvalidArgument("capacity must be at least 1, got %d", capacity)
		return
	}

	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewLinearProbingHashAlgorithm[K](capacity, hashfunc.Default[K]())
	} else {
		hashAlgorithm.SetTableSize(capacity)
	}

	ht = &HashTable[K, V]{
		keys:          make([]K, capacity),
		vals:          make([]V, capacity),
		used:          make([]bool, capacity),
		hashAlgorithm: hashAlgorithm,
		nillableKey:   utils.IsNillable[K](),
		nillableValue: utils.IsNillable[V](),
	}

	return
}

// Size - Returns the number of key-value pairs in the table
func (H *HashTable[K, V]) Size() int64 {
	return H.n
}

// IsEmpty - Returns true if the table holds no pairs
func (H *HashTable[K, V]) IsEmpty() bool {
	return H.n == 0
}

// TableSize - Returns the current number of slots
func (H *HashTable[K, V]) TableSize() int64 {
	return int64(len(H.keys))
}

// Put - Inserts the key-value pair, overwriting the value if the key is already present.
// A nil value (for nillable V) removes the key instead, just as Delete does.
// Before a new key is inserted the table doubles if it is already half full.
//   - key is the key to insert, it must not be nil
//   - value is the value to associate with key
//
// It returns:
//   - err is of type errs.InvalidArgument if key is nil, or errs.ProbingAlgorithm if a custom hash algorithm never reaches an empty slot
func (H *HashTable[K, V]) Put(key K, value V) (err error) {
	if H.isNilKey(key) {
		err = errs.NewInvalidArgument("first argument to put() is nil")
		return
	}

	if H.nillableValue && utils.IsNil(value) {
		return H.Delete(key)
	}

	err = H.put(key, value)
	if err != nil {
		return
	}

	invariants.Check(H.check)

	return
}

// Get - Returns the value associated with key.
//   - key is the key to look up, it must not be nil
//
// It returns:
//   - value is the associated value, or the zero value of V if not found
//   - found is false if the key is not in the table
//   - err is of type errs.InvalidArgument if key is nil, or errs.ProbingAlgorithm if a custom hash algorithm never reaches an empty slot
func (H *HashTable[K, V]) Get(key K) (value V, found bool, err error) {
	if H.isNilKey(key) {
		err = errs.NewInvalidArgument("argument to get() is nil")
		return
	}

	slot, found, err := H.probing(key)
	if err != nil || !found {
		return
	}

	value = H.vals[slot]

	return
}

// Contains - Returns true if the table holds a value for key
func (H *HashTable[K, V]) Contains(key K) (found bool, err error) {
	if H.isNilKey(key) {
		err = errs.NewInvalidArgument("argument to contains() is nil")
		return
	}

	_, found, err = H.Get(key)

	return
}

// Delete - Removes key and its value from the table, it is a no-op if the key is not present.
// Every key after the freed slot up to the next empty slot is taken out and reinserted, and the table halves
// if it ends up at most one eighth full.
//   - key is the key to remove, it must not be nil
//
// It returns:
//   - err is of type errs.InvalidArgument if key is nil, or errs.ProbingAlgorithm if a custom hash algorithm never reaches an empty slot.
//     If reinserting the rest of the cluster fails the table is left as it was before the call. If only the shrink
//     fails the key stays deleted and the table keeps its size.
func (H *HashTable[K, V]) Delete(key K) (err error) {
	if H.isNilKey(key) {
		err = errs.NewInvalidArgument("argument to delete() is nil")
		return
	}

	err = H.delete(key)
	if err != nil {
		return
	}

	invariants.Check(H.check)

	return
}

// Keys - Returns an iter.Seq over all keys in the table in slot order, which is unspecified from the caller's
// point of view. The table must not be modified while the sequence is being consumed.
func (H *HashTable[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range H.keys {
			if H.used[i] && !yield(H.keys[i]) {
				return
			}
		}
	}
}

// All - Returns an iter.Seq2 over all key-value pairs in the table in the same order as Keys
func (H *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range H.keys {
			if H.used[i] && !yield(H.keys[i], H.vals[i]) {
				return
			}
		}
	}
}

// Stat - Walks through the entire slot array and produces a TableStat.
//   - includeDistribution set to true will include a slice of length TableSize with the probe distance of the key in each slot (-1 for empty slots), false will set TableStat.ProbeDistribution to nil.
func (H *HashTable[K, V]) Stat(includeDistribution bool) (stat TableStat) {
	m := H.TableSize()
	stat.Pairs = H.n
	stat.TableSize = m
	stat.LoadFactor = float64(H.n) / float64(m)

	if includeDistribution {
		stat.ProbeDistribution = make([]int64, m)
		for i := int64(0); i < m; i++ {
			stat.ProbeDistribution[i] = -1
			if H.used[i] {
				stat.ProbeDistribution[i] = H.probeDistance(i)
			}
		}
	}

	stat.Clusters, stat.LongestCluster = H.clusters()

	return
}
