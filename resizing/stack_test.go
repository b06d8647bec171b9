//go:build unit

package resizing

import (
	"github.com/gostonefire/collections/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

// checkCapacity - Asserts n <= capacity <= 4n with capacity >= 2
func checkCapacity(t *testing.T, n, capacity int) {
	t.Helper()
	require.LessOrEqual(t, n, capacity, "count within capacity")
	require.GreaterOrEqual(t, capacity, 2, "capacity never below minimum")
	if capacity > 2 {
		require.LessOrEqual(t, capacity, 4*n, "capacity at most four times count")
	}
}

func TestStack_PushPop(t *testing.T) {
	t.Run("pops in reverse order of push", func(t *testing.T) {
		// Prepare
		s := NewStack[string]()
		s.Push("aa")
		s.Push("bb")
		s.Push("cc")

		// Execute
		a, errA := s.Pop()
		b, errB := s.Pop()
		c, errC := s.Pop()
		_, errD := s.Pop()

		// Check
		assert.NoError(t, errA)
		assert.NoError(t, errB)
		assert.NoError(t, errC)
		assert.Equal(t, "cc", a, "first pop")
		assert.Equal(t, "bb", b, "second pop")
		assert.Equal(t, "aa", c, "third pop")
		assert.ErrorIs(t, errD, errs.Underflow{}, "fourth pop underflows")
		assert.Equal(t, 0, s.Size(), "empty after underflow")
		assert.True(t, s.IsEmpty())
	})
}

func TestStack_Peek(t *testing.T) {
	t.Run("peek on empty stack underflows", func(t *testing.T) {
		// Prepare
		s := NewStack[int]()

		// Execute
		_, err := s.Peek()

		// Check
		assert.ErrorIs(t, err, errs.Underflow{})
	})

	t.Run("peek returns top without removing it", func(t *testing.T) {
		// Prepare
		s := NewStack[int]()
		s.Push(1)
		s.Push(2)

		// Execute
		top, err := s.Peek()

		// Check
		assert.NoError(t, err)
		assert.Equal(t, 2, top)
		assert.Equal(t, 2, s.Size(), "size unchanged")
	})
}

func TestStack_Resize(t *testing.T) {
	t.Run("doubles when full and halves at a quarter full", func(t *testing.T) {
		// Prepare
		s := NewStack[int]()
		assert.Equal(t, 2, s.Cap(), "initial capacity")

		// Execute
		for i := 0; i < 9; i++ {
			s.Push(i)
		}

		// Check
		assert.Equal(t, 16, s.Cap(), "grown to hold nine items")

		// Execute
		for i := 0; i < 5; i++ {
			_, err := s.Pop()
			assert.NoError(t, err)
		}

		// Check
		assert.Equal(t, 4, s.Size())
		assert.Equal(t, 8, s.Cap(), "halved at a quarter full")

		for !s.IsEmpty() {
			_, _ = s.Pop()
		}
		assert.Equal(t, 2, s.Cap(), "back at minimum capacity")
	})

	t.Run("popped slots are cleared", func(t *testing.T) {
		// Prepare
		s := NewStack[*int]()
		v := 7
		s.Push(&v)
		s.Push(&v)

		// Execute
		_, _ = s.Pop()

		// Check
		assert.Nil(t, s.items[1], "vacated slot does not retain the item")
	})
}

func TestStack_Iterator(t *testing.T) {
	t.Run("iterates from top to bottom and restarts", func(t *testing.T) {
		// Prepare
		s := NewStack[string]()
		for _, v := range []string{"a", "b", "c"} {
			s.Push(v)
		}

		// Execute
		var first, second []string
		for v := range s.All() {
			first = append(first, v)
		}
		it := s.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			assert.NoError(t, err)
			second = append(second, v)
		}
		_, err := it.Next()

		// Check
		assert.Equal(t, []string{"c", "b", "a"}, first, "LIFO order")
		assert.Equal(t, first, second, "fresh iteration starts over")
		assert.ErrorIs(t, err, errs.Underflow{}, "exhausted iterator")
		assert.Equal(t, "c b a ", s.String())
		assert.Equal(t, 3, s.Size(), "iteration is read-only")
	})
}

func TestStack_RandomOperations(t *testing.T) {
	t.Run("size and capacity invariants hold for random operations", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(1))
		s := NewStack[int]()
		var model []int
		pushes, pops := 0, 0

		// Execute & Check
		for i := 0; i < 10000; i++ {
			if rng.Intn(3) < 2 {
				s.Push(i)
				model = append(model, i)
				pushes++
			} else {
				v, err := s.Pop()
				if len(model) == 0 {
					require.ErrorIs(t, err, errs.Underflow{})
				} else {
					require.NoError(t, err)
					require.Equal(t, model[len(model)-1], v, "LIFO order")
					model = model[:len(model)-1]
					pops++
				}
			}
			require.Equal(t, pushes-pops, s.Size(), "size accounting")
			checkCapacity(t, s.Size(), s.Cap())
		}
	})
}
