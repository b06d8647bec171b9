package conf

// MinArrayCapacity - Initial and smallest capacity of the resizing stack and queue backing arrays
const MinArrayCapacity int = 2

// GrowFactor - Factor by which a backing array or slot table is multiplied when it is full
const GrowFactor int = 2

// ArrayShrinkDivisor - A resizing array is halved when its count drops to capacity / ArrayShrinkDivisor
const ArrayShrinkDivisor int = 4

// InitialTableCapacity - Initial number of slots in a linear probing hash table
const InitialTableCapacity int64 = 4

// TableGrowDivisor - A linear probing hash table doubles before an insert when count >= slots / TableGrowDivisor
const TableGrowDivisor int64 = 2

// TableShrinkDivisor - A linear probing hash table halves after a delete when 0 < count <= slots / TableShrinkDivisor
const TableShrinkDivisor int64 = 8

// HashMask - Mask applied to a hash value before reduction, it clears everything but the lower 31 bits so the
// reduced index can never be negative
const HashMask uint64 = 0x7fffffff

// DefaultChains - Default number of chains in a separate chaining symbol table
const DefaultChains int64 = 997

// IntMapChains - Fixed number of chains in the integer chaining map
const IntMapChains int = 128

// MaxStackCapacity - Initial capacity of the max tracking stack
const MaxStackCapacity int = 20

// PQCapacity - Default initial capacity of the array priority queues
const PQCapacity int = 10
