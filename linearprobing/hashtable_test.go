//go:build unit

package linearprobing

import (
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"math/rand"
	"testing"
)

// collide - Hashes 20 onto the home slot of 10, every other key to its own value
func collide(key int) uint64 {
	if key == 20 {
		return 10
	}
	return uint64(key)
}

// stuckAlgorithm - A broken hash algorithm whose probe sequence never leaves the home slot
type stuckAlgorithm struct {
	tableSize int64
}

func (S *stuckAlgorithm) SetTableSize(tableSize int64) { S.tableSize = tableSize }

func (S *stuckAlgorithm) HashFunc1(key int) int64 { return 0 }

func (S *stuckAlgorithm) GetTableSize() int64 { return S.tableSize }

func (S *stuckAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 { return hf1Value }

// flakyAlgorithm - Linear probing over fixed home slots that stops probing from slot 1 once broken
type flakyAlgorithm struct {
	tableSize int64
	home      map[int]int64
	broken    bool
}

func (F *flakyAlgorithm) SetTableSize(tableSize int64) { F.tableSize = tableSize }

func (F *flakyAlgorithm) HashFunc1(key int) int64 { return F.home[key] }

func (F *flakyAlgorithm) GetTableSize() int64 { return F.tableSize }

func (F *flakyAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	if F.broken && hf1Value == 1 {
		return -1
	}
	return (hf1Value + iteration) % F.tableSize
}

func TestNewWithCapacity(t *testing.T) {
	t.Run("rejects capacity less than 1", func(t *testing.T) {
		// Execute
		ht, err := NewWithCapacity[int, int](0, nil)

		// Check
		assert.ErrorIs(t, err, errs.InvalidArgument{}, "capacity 0 rejected")
		assert.Nil(t, ht, "no table created")
	})

	t.Run("sets table size of custom algorithm", func(t *testing.T) {
		// Prepare
		alg := &stuckAlgorithm{tableSize: 100}

		// Execute
		ht, err := NewWithCapacity[int, string](16, alg)

		// Check
		require.NoError(t, err)
		assert.Equal(t, int64(16), alg.GetTableSize(), "table size overwritten")
		assert.Equal(t, int64(16), ht.TableSize(), "slots allocated")
	})

	t.Run("new table starts with 4 slots", func(t *testing.T) {
		// Execute
		ht := New[string, int]()

		// Check
		assert.Equal(t, int64(4), ht.TableSize(), "initial table size")
		assert.True(t, ht.IsEmpty(), "empty")
	})

	t.Run("rejects nil hasher", func(t *testing.T) {
		// Execute
		_, err := NewWithHasher[int, int](8, nil)

		// Check
		assert.ErrorIs(t, err, errs.InvalidArgument{}, "nil hasher rejected")
	})
}

func TestHashTable_Put(t *testing.T) {
	t.Run("grows to at least twice the number of keys", func(t *testing.T) {
		// Prepare
		ht := New[int, int]()

		// Execute
		for k := 1; k <= 100; k++ {
			err := ht.Put(k, k*k)
			require.NoError(t, err)
			assert.LessOrEqualf(t, 2*ht.Size(), ht.TableSize(), "load factor at most 1/2 after put #%d", k)
		}

		// Check
		assert.Equal(t, int64(100), ht.Size(), "all keys stored")
		assert.GreaterOrEqual(t, ht.TableSize(), int64(200), "table size at least 2n")
		assert.Equal(t, int64(256), ht.TableSize(), "doubled from 4")
		for k := 1; k <= 100; k++ {
			v, found, err := ht.Get(k)
			assert.NoError(t, err)
			assert.Truef(t, found, "key %d found", k)
			assert.Equalf(t, k*k, v, "value of key %d", k)
		}
		assert.NoError(t, ht.check(), "invariants hold")
	})

	t.Run("overwrites existing key without growing", func(t *testing.T) {
		// Prepare
		ht := New[string, int]()
		require.NoError(t, ht.Put("a", 1))
		require.NoError(t, ht.Put("b", 2))
		assert.Equal(t, int64(4), ht.TableSize(), "half full")

		// Execute
		err := ht.Put("a", 10)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(2), ht.Size(), "size unchanged")
		assert.Equal(t, int64(4), ht.TableSize(), "no growth for an existing key")
		v, found, _ := ht.Get("a")
		assert.True(t, found)
		assert.Equal(t, 10, v, "value overwritten")
	})

	t.Run("nil key rejected", func(t *testing.T) {
		// Prepare
		ht := New[*int, string]()

		// Execute
		err := ht.Put(nil, "x")

		// Check
		assert.ErrorIs(t, err, errs.InvalidArgument{}, "nil key")
		assert.Equal(t, int64(0), ht.Size(), "table unchanged")
	})

	t.Run("nil value deletes key", func(t *testing.T) {
		// Prepare
		ht := New[string, *int]()
		v := 5
		require.NoError(t, ht.Put("a", &v))
		require.NoError(t, ht.Put("b", &v))

		// Execute
		err := ht.Put("a", nil)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(1), ht.Size(), "one key left")
		found, err := ht.Contains("a")
		assert.NoError(t, err)
		assert.False(t, found, "a deleted")
	})

	t.Run("broken probe sequence is reported", func(t *testing.T) {
		// Prepare
		ht, err := NewWithCapacity[int, int](8, &stuckAlgorithm{})
		require.NoError(t, err)
		require.NoError(t, ht.Put(1, 1))

		// Execute
		err = ht.Put(2, 2)

		// Check
		assert.ErrorIs(t, err, errs.ProbingAlgorithm{}, "probe sequence exhausted")
		assert.Equal(t, int64(1), ht.Size(), "table unchanged")
	})
}

func TestHashTable_Get(t *testing.T) {
	t.Run("missing key is not an error", func(t *testing.T) {
		// Prepare
		ht := New[string, string]()
		require.NoError(t, ht.Put("here", "yes"))

		// Execute
		v, found, err := ht.Get("gone")

		// Check
		assert.NoError(t, err)
		assert.False(t, found, "not found")
		assert.Equal(t, "", v, "zero value")
	})

	t.Run("nil key rejected", func(t *testing.T) {
		// Prepare
		ht := New[*int, string]()

		// Execute
		_, _, errGet := ht.Get(nil)
		_, errContains := ht.Contains(nil)

		// Check
		assert.ErrorIs(t, errGet, errs.InvalidArgument{}, "get")
		assert.ErrorIs(t, errContains, errs.InvalidArgument{}, "contains")
	})
}

func TestHashTable_Delete(t *testing.T) {
	t.Run("colliding key stays reachable after delete", func(t *testing.T) {
		// Prepare
		ht, err := NewWithHasher[int, string](8, collide)
		require.NoError(t, err)
		for _, k := range []int{10, 20, 30, 40} {
			require.NoError(t, ht.Put(k, "v"))
		}
		stat := ht.Stat(true)
		assert.Equal(t, int64(8), stat.TableSize, "no resize")
		assert.Equal(t, int64(0), stat.ProbeDistribution[2], "10 in its home slot")
		assert.Equal(t, int64(1), stat.ProbeDistribution[3], "20 one slot past home")

		// Execute
		err = ht.Delete(10)

		// Check
		assert.NoError(t, err)
		_, found, _ := ht.Get(10)
		assert.False(t, found, "10 deleted")
		v, found, err := ht.Get(20)
		assert.NoError(t, err)
		assert.True(t, found, "20 still found")
		assert.Equal(t, "v", v)
		assert.Equal(t, int64(3), ht.Size(), "size decreased by one")
		assert.Equal(t, int64(0), ht.Stat(true).ProbeDistribution[2], "20 moved to its home slot")
		assert.NoError(t, ht.check(), "invariants hold")
	})

	t.Run("cluster repair wraps around the end of the table", func(t *testing.T) {
		// Prepare
		ht, err := NewWithHasher[int, int](8, func(int) uint64 { return 7 })
		require.NoError(t, err)
		for _, k := range []int{1, 2, 3} {
			require.NoError(t, ht.Put(k, k))
		}

		// Execute
		err = ht.Delete(1)

		// Check
		assert.NoError(t, err)
		for _, k := range []int{2, 3} {
			_, found, _ := ht.Get(k)
			assert.Truef(t, found, "key %d found", k)
		}
		stat := ht.Stat(true)
		assert.Equal(t, int64(0), stat.ProbeDistribution[7], "2 in home slot")
		assert.Equal(t, int64(1), stat.ProbeDistribution[0], "3 wrapped to slot 0")
		assert.Equal(t, int64(-1), stat.ProbeDistribution[1], "slot 1 freed")
		assert.NoError(t, ht.check(), "invariants hold")
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		// Prepare
		ht := New[int, int]()
		require.NoError(t, ht.Put(1, 1))

		// Execute
		err := ht.Delete(2)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(1), ht.Size(), "size unchanged")
	})

	t.Run("nil key rejected", func(t *testing.T) {
		// Prepare
		ht := New[*int, int]()

		// Execute
		err := ht.Delete(nil)

		// Check
		assert.ErrorIs(t, err, errs.InvalidArgument{}, "nil key")
	})

	t.Run("shrinks when one eighth full", func(t *testing.T) {
		// Prepare
		ht := New[int, int]()
		for k := 1; k <= 16; k++ {
			require.NoError(t, ht.Put(k, k))
		}
		assert.Equal(t, int64(32), ht.TableSize(), "exactly half full")

		// Execute
		for k := 1; k <= 11; k++ {
			require.NoError(t, ht.Delete(k))
		}
		assert.Equal(t, int64(32), ht.TableSize(), "5 pairs in 32 slots")
		require.NoError(t, ht.Delete(12))

		// Check
		assert.Equal(t, int64(16), ht.TableSize(), "halved at 4 pairs")
		for k := 13; k <= 16; k++ {
			_, found, _ := ht.Get(k)
			assert.Truef(t, found, "key %d found", k)
		}
		for k := 13; k <= 16; k++ {
			require.NoError(t, ht.Delete(k))
		}
		assert.True(t, ht.IsEmpty(), "all deleted")
		assert.Equal(t, int64(4), ht.TableSize(), "never shrinks on the last delete")
	})
}

func TestHashTable_Keys(t *testing.T) {
	t.Run("yields every key once and can be restarted", func(t *testing.T) {
		// Prepare
		ht := New[string, int]()
		want := map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true}
		for k := range want {
			require.NoError(t, ht.Put(k, 0))
		}

		// Execute & Check
		for pass := 0; pass < 2; pass++ {
			got := make(map[string]bool)
			for k := range ht.Keys() {
				assert.Falsef(t, got[k], "key %s yielded once in pass %d", k, pass)
				got[k] = true
			}
			assert.Equal(t, want, got)
		}
	})

	t.Run("stops when the consumer breaks", func(t *testing.T) {
		// Prepare
		ht := New[int, int]()
		for k := 0; k < 10; k++ {
			require.NoError(t, ht.Put(k, k))
		}

		// Execute
		var count int
		for range ht.Keys() {
			count++
			if count == 3 {
				break
			}
		}

		// Check
		assert.Equal(t, 3, count)
	})

	t.Run("all yields values with keys", func(t *testing.T) {
		// Prepare
		ht := New[int, int]()
		for k := 0; k < 10; k++ {
			require.NoError(t, ht.Put(k, -k))
		}

		// Execute & Check
		var count int
		for k, v := range ht.All() {
			assert.Equal(t, -k, v)
			count++
		}
		assert.Equal(t, 10, count)
	})
}

func TestHashTable_Stat(t *testing.T) {
	t.Run("counts clusters", func(t *testing.T) {
		// Prepare
		ht, err := NewWithHasher[int, int](8, hashfunc.Integer[int])
		require.NoError(t, err)
		for _, k := range []int{0, 1, 3} {
			require.NoError(t, ht.Put(k, k))
		}

		// Execute
		stat := ht.Stat(false)

		// Check
		assert.Equal(t, int64(3), stat.Pairs)
		assert.Equal(t, int64(8), stat.TableSize)
		assert.Equal(t, 0.375, stat.LoadFactor)
		assert.Equal(t, int64(2), stat.Clusters, "slots 0-1 and slot 3")
		assert.Equal(t, int64(2), stat.LongestCluster)
		assert.Nil(t, stat.ProbeDistribution, "no distribution requested")
	})

	t.Run("a cluster wrapping around the end counts once", func(t *testing.T) {
		// Prepare
		ht, err := NewWithHasher[int, int](8, hashfunc.Integer[int])
		require.NoError(t, err)
		for _, k := range []int{7, 0, 8} {
			require.NoError(t, ht.Put(k, k))
		}

		// Execute
		stat := ht.Stat(true)

		// Check
		assert.Equal(t, int64(1), stat.Clusters, "slots 7, 0 and 1")
		assert.Equal(t, int64(3), stat.LongestCluster)
		assert.Equal(t, []int64{0, 1, -1, -1, -1, -1, -1, 0}, stat.ProbeDistribution)
	})

	t.Run("empty table", func(t *testing.T) {
		// Execute
		stat := New[int, int]().Stat(false)

		// Check
		assert.Equal(t, int64(0), stat.Clusters)
		assert.Equal(t, int64(0), stat.LongestCluster)
		assert.Equal(t, 0.0, stat.LoadFactor)
	})
}

func TestHashTable_RandomOperations(t *testing.T) {
	hashers := map[string]hashfunc.Hasher[int]{
		"default":   hashfunc.Default[int](),
		"clustered": func(k int) uint64 { return uint64(k % 3) },
	}

	for name, hasher := range hashers {
		t.Run(name, func(t *testing.T) {
			// Prepare
			rng := rand.New(rand.NewSource(3))
			ht, err := NewWithHasher[int, int](4, hasher)
			require.NoError(t, err)
			reference := make(map[int]int)

			// Execute & Check
			for i := 0; i < 2000; i++ {
				k := rng.Intn(64)
				if rng.Intn(3) == 0 {
					require.NoError(t, ht.Delete(k))
					delete(reference, k)
				} else {
					require.NoError(t, ht.Put(k, i))
					reference[k] = i
					require.LessOrEqual(t, 2*ht.Size(), ht.TableSize(), "load factor after put")
				}
				require.NoErrorf(t, ht.check(), "invariants after operation #%d", i)
				require.Equal(t, int64(len(reference)), ht.Size(), "size matches reference")
			}

			for k := 0; k < 64; k++ {
				v, found, err := ht.Get(k)
				require.NoError(t, err)
				mv, ok := reference[k]
				assert.Equalf(t, ok, found, "presence of key %d", k)
				assert.Equalf(t, mv, v, "value of key %d", k)
			}
		})
	}
}

func TestHashTable_DeleteFailedRepair(t *testing.T) {
	t.Run("table is unchanged when the cluster can not be reinserted", func(t *testing.T) {
		// Prepare
		alg := &flakyAlgorithm{home: map[int]int64{1: 0, 2: 1, 3: 1}}
		ht, err := NewWithCapacity[int, string](8, alg)
		require.NoError(t, err)
		require.NoError(t, ht.Put(1, "one"))
		require.NoError(t, ht.Put(2, "two"))
		require.NoError(t, ht.Put(3, "three"))
		require.Equal(t, []int{1, 2, 3}, ht.keys[:3], "cluster of slots 0 to 2")

		// Execute
		alg.broken = true
		err = ht.Delete(1)

		// Check
		assert.ErrorIs(t, err, errs.ProbingAlgorithm{}, "reinsertion of 2 fails")
		assert.Equal(t, int64(3), ht.Size(), "no pair lost")
		assert.Equal(t, []int{1, 2, 3}, ht.keys[:3], "cluster restored in place")
		assert.Equal(t, []bool{true, true, true, false}, ht.used[:4])

		alg.broken = false
		require.NoError(t, ht.check())
		for k, want := range map[int]string{1: "one", 2: "two", 3: "three"} {
			v, found, err := ht.Get(k)
			require.NoError(t, err)
			assert.Truef(t, found, "key %d present", k)
			assert.Equal(t, want, v)
		}
	})

	t.Run("delete succeeds once the algorithm behaves", func(t *testing.T) {
		// Prepare
		alg := &flakyAlgorithm{home: map[int]int64{1: 0, 2: 1, 3: 1}}
		ht, err := NewWithCapacity[int, string](8, alg)
		require.NoError(t, err)
		require.NoError(t, ht.Put(1, "one"))
		require.NoError(t, ht.Put(2, "two"))
		require.NoError(t, ht.Put(3, "three"))

		// Execute
		err = ht.Delete(1)

		// Check
		require.NoError(t, err)
		assert.Equal(t, int64(2), ht.Size())
		assert.Equal(t, []int{0, 2, 3}, ht.keys[:3], "2 and 3 stay after their home slot")
		require.NoError(t, ht.check())
	})
}

func TestHashTable_InterfaceKeys(t *testing.T) {
	t.Run("zero keys of either sign find the same pair", func(t *testing.T) {
		// Prepare
		ht := New[any, string]()
		require.NoError(t, ht.Put(0.0, "zero"))
		for i := 1; i <= 20; i++ {
			require.NoError(t, ht.Put(i, "int"))
		}

		// Execute
		v, found, err := ht.Get(math.Copysign(0, -1))

		// Check
		require.NoError(t, err)
		assert.True(t, found, "negative zero equals zero")
		assert.Equal(t, "zero", v)
		require.NoError(t, ht.check())
	})
}
