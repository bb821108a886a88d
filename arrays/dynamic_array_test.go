package arrays_test

import (
	"testing"

	"github.com/amp-labs/amp-arrays/arrays"
	"github.com/amp-labs/amp-arrays/optional"
	"github.com/amp-labs/amp-arrays/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dynamicAsInts(arr arrays.DynamicArray[sortable.Int]) []int {
	out := make([]int, 0, arr.Size())
	for _, v := range arr.Seq() {
		out = append(out, int(v))
	}

	return out
}

func TestNewDynamicArray(t *testing.T) {
	t.Parallel()

	t.Run("creates empty array with capacity one", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArray[sortable.Int]()
		require.NotNil(t, arr)
		assert.Equal(t, 0, arr.Size())
		assert.Equal(t, 1, arr.Capacity())
	})
}

func TestNewDynamicArrayFrom(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{5, 3, 8, 1})
		assert.Equal(t, []int{5, 3, 8, 1}, dynamicAsInts(arr))
		assert.Equal(t, 8, arr.Capacity())
	})

	t.Run("empty input still allocates capacity one", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{})
		assert.Equal(t, 0, arr.Size())
		assert.Equal(t, 1, arr.Capacity())
	})
}

func TestDynamicArray_Append(t *testing.T) {
	t.Parallel()

	t.Run("appends at the tail", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArray[sortable.Int]()
		arr.Append(3, 1, 2)

		assert.Equal(t, []int{3, 1, 2}, dynamicAsInts(arr))
	})

	t.Run("grows by doubling", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArray[sortable.Int]()
		expected := []int{1, 2, 4, 4, 8}

		for i := range expected {
			arr.Append(sortable.Int(i))
			assert.Equal(t, expected[i], arr.Capacity(), "capacity after %d appends", i+1)
		}
	})
}

func TestDynamicArray_Insert(t *testing.T) {
	t.Parallel()

	t.Run("inserts at the front", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{2, 3})
		require.NoError(t, arr.Insert(0, sortable.Int(1)))
		assert.Equal(t, []int{1, 2, 3}, dynamicAsInts(arr))
	})

	t.Run("inserts in the middle", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 3})
		require.NoError(t, arr.Insert(1, sortable.Int(2)))
		assert.Equal(t, []int{1, 2, 3}, dynamicAsInts(arr))
	})

	t.Run("index equal to size appends", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2})
		require.NoError(t, arr.Insert(2, sortable.Int(3)))
		assert.Equal(t, []int{1, 2, 3}, dynamicAsInts(arr))
	})

	t.Run("out of range insert fails without mutation", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2})

		require.ErrorIs(t, arr.Insert(3, sortable.Int(9)), arrays.ErrIndexOutOfRange)
		require.ErrorIs(t, arr.Insert(-1, sortable.Int(9)), arrays.ErrIndexOutOfRange)

		assert.Equal(t, []int{1, 2}, dynamicAsInts(arr))
	})
}

func TestDynamicArray_Set(t *testing.T) {
	t.Parallel()

	t.Run("replaces the element in place", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2, 3})
		require.NoError(t, arr.Set(1, sortable.Int(9)))

		assert.Equal(t, []int{1, 9, 3}, dynamicAsInts(arr))
		assert.Equal(t, 3, arr.Size())
	})

	t.Run("out of range set fails", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2, 3})

		require.ErrorIs(t, arr.Set(3, sortable.Int(9)), arrays.ErrIndexOutOfRange)
		require.ErrorIs(t, arr.Set(-1, sortable.Int(9)), arrays.ErrIndexOutOfRange)
	})
}

func TestDynamicArray_GetAndRemove(t *testing.T) {
	t.Parallel()

	t.Run("get returns positional elements", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{5, 3, 8})

		got, err := arr.Get(1)
		require.NoError(t, err)
		assert.Equal(t, sortable.Int(3), got)

		_, err = arr.Get(3)
		require.ErrorIs(t, err, arrays.ErrIndexOutOfRange)
	})

	t.Run("remove shifts later elements left", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{5, 3, 8, 1})
		require.NoError(t, arr.Remove(1))

		assert.Equal(t, []int{5, 8, 1}, dynamicAsInts(arr))
	})

	t.Run("out of range remove fails without mutation", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2})

		require.ErrorIs(t, arr.Remove(2), arrays.ErrIndexOutOfRange)
		assert.Equal(t, []int{1, 2}, dynamicAsInts(arr))
	})
}

func TestDynamicArray_Find(t *testing.T) {
	t.Parallel()

	t.Run("returns the first matching index", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{7, 3, 7})
		assert.Equal(t, optional.Some(0), arr.Find(sortable.Int(7)))
		assert.Equal(t, optional.Some(1), arr.Find(sortable.Int(3)))
	})

	t.Run("returns None for absent value", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2, 3})
		assert.True(t, arr.Find(sortable.Int(9)).Empty())
	})

	t.Run("returns None on empty array", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArray[sortable.Int]()
		assert.True(t, arr.Find(sortable.Int(1)).Empty())
	})
}

func TestDynamicArray_CloneAndClear(t *testing.T) {
	t.Parallel()

	t.Run("clone owns its buffer", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2, 3})
		clone := arr.Clone()

		require.NoError(t, arr.Set(0, sortable.Int(9)))

		assert.Equal(t, []int{9, 2, 3}, dynamicAsInts(arr))
		assert.Equal(t, []int{1, 2, 3}, dynamicAsInts(clone))
	})

	t.Run("clear keeps capacity", func(t *testing.T) {
		t.Parallel()

		arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2, 3})
		capacity := arr.Capacity()

		arr.Clear()

		assert.Equal(t, 0, arr.Size())
		assert.Equal(t, capacity, arr.Capacity())
	})
}

func TestDynamicArray_Entries(t *testing.T) {
	t.Parallel()

	arr := arrays.NewDynamicArrayFrom([]sortable.Int{1, 2})

	entries := arr.Entries()
	entries[0] = 99

	assert.Equal(t, []int{1, 2}, dynamicAsInts(arr))
}
