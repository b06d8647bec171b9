package separatechaining

import "github.com/gostonefire/collections/internal/conf"

type intEntry struct {
	key   int
	value int
	next  *intEntry
}

// IntMap - A map of int to int over conf.IntMapChains fixed chains. A key selects its chain by key mod 128 and new
// pairs are appended at the tail of the chain.
type IntMap struct {
	table [conf.IntMapChains]*intEntry
	n     int
}

// NewIntMap - Returns a pointer to a new empty IntMap
func NewIntMap() *IntMap {
	return &IntMap{}
}

// Size - Returns the number of pairs in the map
func (I *IntMap) Size() int {
	return I.n
}

// Get - Returns the value associated with key and true, or 0 and false if key is not in the map
func (I *IntMap) Get(key int) (value int, found bool) {
	for entry := I.table[chain(key)]; entry != nil; entry = entry.next {
		if entry.key == key {
			return entry.value, true
		}
	}

	return
}

// Put - Inserts the pair at the tail of its chain, or overwrites the value if key is already present
func (I *IntMap) Put(key, value int) {
	c := chain(key)
	if I.table[c] == nil {
		I.table[c] = &intEntry{key: key, value: value}
		I.n++
		return
	}

	entry := I.table[c]
	for entry.next != nil && entry.key != key {
		entry = entry.next
	}
	if entry.key == key {
		entry.value = value
		return
	}

	entry.next = &intEntry{key: key, value: value}
	I.n++
}

// Remove - Removes key from the map, it is a no-op if key is not present
func (I *IntMap) Remove(key int) {
	c := chain(key)

	var prev *intEntry
	for entry := I.table[c]; entry != nil; prev, entry = entry, entry.next {
		if entry.key != key {
			continue
		}

		if prev == nil {
			I.table[c] = entry.next
		} else {
			prev.next = entry.next
		}
		I.n--
		return
	}
}

// chain - Returns the chain of key, negative keys wrap so that every key has a chain
func chain(key int) int {
	c := key % conf.IntMapChains
	if c < 0 {
		c += conf.IntMapChains
	}
	return c
}
