package arrays

import (
	"iter"

	"github.com/amp-labs/amp-arrays/compare"
	"github.com/amp-labs/amp-arrays/optional"
	"github.com/amp-labs/amp-arrays/sortable"
)

// DynamicArray is a contiguous array container with positional semantics
// and no ordering invariant. It shares the growth rules of OrderedArray
// (capacity starts at 1 and doubles when an insertion would overflow) but
// lets the caller choose where elements go.
//
// Thread-safety: implementations are not thread-safe. Concurrent access
// must be synchronized by the caller.
type DynamicArray[T compare.Comparable[T]] interface {
	// Append adds values at the tail, growing the buffer as needed.
	Append(values ...T)

	// Insert places value at index, shifting elements at [index, Size())
	// one slot right. index may equal Size(), which appends. Returns
	// ErrIndexOutOfRange and changes nothing when index is not within
	// [0, Size()].
	Insert(index int, value T) error

	// Set replaces the element at index.
	// Returns ErrIndexOutOfRange when index is not within [0, Size()).
	Set(index int, value T) error

	// Remove deletes the element at index, shifting later elements left.
	// Returns ErrIndexOutOfRange and changes nothing when index is not
	// within [0, Size()).
	Remove(index int) error

	// Get returns the element at index.
	// Returns ErrIndexOutOfRange when index is not within [0, Size()).
	Get(index int) (T, error)

	// Find scans for the first element equal to value and returns its
	// index, or None when no equal element is present. Cost is O(n).
	Find(value T) optional.Value[int]

	// Size returns the number of elements currently stored.
	Size() int

	// Capacity returns the number of allocated buffer slots.
	Capacity() int

	// Entries returns a copy of the elements in storage order.
	Entries() []T

	// Seq returns an iterator over (index, element) pairs in storage order.
	Seq() iter.Seq2[int, T]

	// Clone returns a deep copy of the container with its own buffer.
	Clone() DynamicArray[T]

	// Clear removes all elements, keeping the allocated capacity.
	Clear()
}

// NewDynamicArray creates an empty DynamicArray with capacity 1.
func NewDynamicArray[T compare.Comparable[T]](opts ...Option) DynamicArray[T] {
	options := newArrayOptions(opts)

	arraysCreated.WithLabelValues(options.name, kindDynamic).Inc()

	return &dynamicArray[T]{
		storage: newStorage[T](1, options),
	}
}

// NewDynamicArrayFrom creates a DynamicArray holding a copy of values in
// their given order. The input slice is not retained. The initial capacity
// is twice the element count.
func NewDynamicArrayFrom[T compare.Comparable[T]](values []T, opts ...Option) DynamicArray[T] {
	options := newArrayOptions(opts)

	arraysCreated.WithLabelValues(options.name, kindDynamic).Inc()

	arr := &dynamicArray[T]{
		storage: newStorage[T](len(values)*2, options),
	}

	copy(arr.buf, values)
	arr.size = len(values)

	return arr
}

// dynamicArray is the concrete DynamicArray implementation.
type dynamicArray[T compare.Comparable[T]] struct {
	storage[T]
}

var _ DynamicArray[sortable.Int] = (*dynamicArray[sortable.Int])(nil)

func (d *dynamicArray[T]) Append(values ...T) {
	for _, value := range values {
		d.ensureCapacity(d.size + 1)
		d.insertAt(d.size, value)
	}
}

func (d *dynamicArray[T]) Insert(index int, value T) error {
	if index < 0 || index > d.size {
		return outOfRange(index, d.size)
	}

	d.ensureCapacity(d.size + 1)
	d.insertAt(index, value)

	return nil
}

func (d *dynamicArray[T]) Set(index int, value T) error {
	if index < 0 || index >= d.size {
		return outOfRange(index, d.size)
	}

	d.buf[index] = value

	return nil
}

func (d *dynamicArray[T]) Remove(index int) error {
	return d.removeAt(index)
}

func (d *dynamicArray[T]) Find(value T) optional.Value[int] {
	for i := range d.size {
		if compare.Equals(d.buf[i], value) {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}

func (d *dynamicArray[T]) Clone() DynamicArray[T] {
	return &dynamicArray[T]{
		storage: d.storage.clone(),
	}
}
