package linearprobing

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/gostonefire/collections/internal/utils"
)

// isNilKey - Returns true if K is nillable and key is nil
func (H *HashTable[K, V]) isNilKey(key K) bool {
	return H.nillableKey && utils.IsNil(key)
}

// probing - Is the linear probing algorithm shared by get, put and delete.
// It returns the slot holding key if found is true, otherwise the first empty slot in the probe sequence.
func (H *HashTable[K, V]) probing(key K) (slot int64, found bool, err error) {
	var n int64
	m := H.TableSize()

	hf1Value := H.hashAlgorithm.HashFunc1(key)

	iMax := m * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe := H.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < 0 || probe >= m {
			continue
		}

		if !H.used[probe] {
			slot = probe
			return
		}
		if H.keys[probe] == key {
			slot = probe
			found = true
			return
		}

		// Relies on the underlying probing function to distinctively go through the entire set of slots
		n++
		if n >= m {
			break
		}
	}

	err = errs.NewProbingAlgorithm(m)
	return
}

// slotPair - A pair taken out of a slot during cluster repair
type slotPair[K comparable, V any] struct {
	slot  int64
	key   K
	value V
}

// put - Inserts or overwrites without argument checks, growing the table first for a new key if it is half full
func (H *HashTable[K, V]) put(key K, value V) (err error) {
	slot, found, err := H.probing(key)
	if err != nil {
		return
	}

	if found {
		H.vals[slot] = value
		return
	}

	if m := H.TableSize(); H.n >= m/conf.TableGrowDivisor {
		err = H.resize(m * int64(conf.GrowFactor))
		if err != nil {
			return
		}

		slot, _, err = H.probing(key)
		if err != nil {
			return
		}
	}

	H.fillSlot(slot, key, value)

	return
}

// delete - Removes key without argument checks and repairs the rest of its cluster.
// If a reinsertion fails the cluster is put back the way it was before the call.
func (H *HashTable[K, V]) delete(key K) (err error) {
	slot, found, err := H.probing(key)
	if err != nil || !found {
		return
	}

	m, n := H.TableSize(), H.n
	taken := []slotPair[K, V]{{slot: slot, key: H.keys[slot], value: H.vals[slot]}}
	var filled []int64
	H.clearSlot(slot)

	for i := (slot + 1) % m; H.used[i]; i = (i + 1) % m {
		taken = append(taken, slotPair[K, V]{slot: i, key: H.keys[i], value: H.vals[i]})
		H.clearSlot(i)
		H.n--

		var to int64
		to, _, err = H.probing(taken[len(taken)-1].key)
		if err != nil {
			H.restoreCluster(taken, filled, n)
			return
		}

		H.fillSlot(to, taken[len(taken)-1].key, taken[len(taken)-1].value)
		filled = append(filled, to)
	}

	H.n--

	if H.n > 0 && H.n <= m/conf.TableShrinkDivisor {
		err = H.resize(m / int64(conf.GrowFactor))
	}

	return
}

// restoreCluster - Undoes a partial cluster repair by emptying the filled slots and putting every taken pair back
func (H *HashTable[K, V]) restoreCluster(taken []slotPair[K, V], filled []int64, n int64) {
	for _, slot := range filled {
		H.clearSlot(slot)
	}
	for _, p := range taken {
		H.fillSlot(p.slot, p.key, p.value)
	}
	H.n = n
}

// fillSlot - Stores a new pair in an empty slot
func (H *HashTable[K, V]) fillSlot(slot int64, key K, value V) {
	H.keys[slot] = key
	H.vals[slot] = value
	H.used[slot] = true
	H.n++
}

// clearSlot - Empties a slot, zeroing key and value so they can be garbage collected
func (H *HashTable[K, V]) clearSlot(slot int64) {
	var zeroKey K
	var zeroValue V
	H.keys[slot] = zeroKey
	H.vals[slot] = zeroValue
	H.used[slot] = false
}

// resize - Rehashes every pair into new slot arrays of the given capacity.
// If reinsertion fails the table is restored to its state before the call.
func (H *HashTable[K, V]) resize(capacity int64) (err error) {
	keys, vals, used, n := H.keys, H.vals, H.used, H.n

	H.keys = make([]K, capacity)
	H.vals = make([]V, capacity)
	H.used = make([]bool, capacity)
	H.n = 0
	H.hashAlgorithm.SetTableSize(capacity)

	for i := range keys {
		if !used[i] {
			continue
		}

		err = H.put(keys[i], vals[i])
		if err != nil {
			H.keys, H.vals, H.used, H.n = keys, vals, used, n
			H.hashAlgorithm.SetTableSize(int64(len(keys)))
			return
		}
	}

	return
}

// probeDistance - Returns how many slots past its home slot the key in an occupied slot is stored
func (H *HashTable[K, V]) probeDistance(slot int64) int64 {
	m := H.TableSize()
	home := H.hashAlgorithm.HashFunc1(H.keys[slot])

	return (slot - home + m) % m
}

// clusters - Counts the maximal runs of occupied slots and the length of the longest one.
// A run that wraps from the last slot to the first is counted once.
func (H *HashTable[K, V]) clusters() (count, longest int64) {
	m := H.TableSize()
	if H.n == 0 {
		return
	}

	// Start right after an empty slot so no run is split by the wrap around
	var start int64
	for start = 0; start < m && H.used[start]; start++ {
	}
	if start == m {
		return 1, m
	}

	var run int64
	for i := int64(1); i <= m; i++ {
		if H.used[(start+i)%m] {
			run++
			continue
		}
		if run > 0 {
			count++
			longest = max(longest, run)
			run = 0
		}
	}

	return
}

// check - Verifies the table invariants: at most half full, the count matches the occupied slots and every key
// is reachable by probing from its home slot without passing an empty slot.
func (H *HashTable[K, V]) check() error {
	m := H.TableSize()
	if m != H.hashAlgorithm.GetTableSize() {
		return errors.AssertionFailedf("hash algorithm table size %d differs from %d slots", H.hashAlgorithm.GetTableSize(), m)
	}
	if m < 2*H.n {
		return errors.AssertionFailedf("table of %d slots holds %d pairs, more than half full", m, H.n)
	}

	var count int64
	for i := int64(0); i < m; i++ {
		if !H.used[i] {
			continue
		}
		count++

		slot, found, err := H.probing(H.keys[i])
		if err != nil {
			return errors.Wrapf(err, "probing for key in slot %d", i)
		}
		if !found || slot != i {
			return errors.AssertionFailedf("key in slot %d is not reachable from its home slot", i)
		}
	}

	if count != H.n {
		return errors.AssertionFailedf("%d occupied slots but a count of %d", count, H.n)
	}

	return nil
}
