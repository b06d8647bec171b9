package hash

import "github.com/gostonefire/collections/internal/conf"

// Reduce - Reduces a 64 bit hash value to an index between 0 and tableSize - 1.
// Only the lower 31 bits take part, so the result can never be negative.
func Reduce(h uint64, tableSize int64) int64 {
	return int64(h&conf.HashMask) % tableSize
}
