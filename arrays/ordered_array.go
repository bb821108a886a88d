package arrays

import (
	"iter"
	"sort"

	"github.com/amp-labs/amp-arrays/optional"
	"github.com/amp-labs/amp-arrays/sortable"
)

// OrderedArray is a contiguous array container that keeps its elements
// sorted at all times, ascending by default or descending when constructed
// with the Descending option. Duplicates are permitted; the relative order
// among equal elements is unspecified.
//
// Thread-safety: implementations are not thread-safe. Concurrent access
// must be synchronized by the caller.
type OrderedArray[T sortable.Sortable[T]] interface {
	// Insert places value at its sorted position, growing the buffer first
	// if it is full. Cost is O(log n) comparisons plus an O(n) worst-case
	// shift; inserting at the tail shifts nothing.
	Insert(value T)

	// InsertAll inserts multiple values one by one, each at its sorted position.
	InsertAll(values ...T)

	// Remove deletes the element at index, shifting later elements left.
	// Returns ErrIndexOutOfRange and changes nothing when index is not
	// within [0, Size()).
	Remove(index int) error

	// Get returns the element at index.
	// Returns ErrIndexOutOfRange when index is not within [0, Size()).
	Get(index int) (T, error)

	// Find binary-searches for value and returns its index, or None when no
	// equal element is present. With duplicates, the returned index is that
	// of whichever equal element the search converges to.
	Find(value T) optional.Value[int]

	// Size returns the number of elements currently stored.
	Size() int

	// Capacity returns the number of allocated buffer slots. Capacity only
	// grows, by doubling, and never shrinks.
	Capacity() int

	// Entries returns a copy of the elements in sorted order.
	Entries() []T

	// Seq returns an iterator over (index, element) pairs in sorted order.
	// This method is compatible with Go 1.23+ range-over-func syntax:
	// for i, v := range arr.Seq() { ... }
	Seq() iter.Seq2[int, T]

	// Clone returns a deep copy of the container. The copy owns its own
	// buffer; mutating one container never affects the other.
	Clone() OrderedArray[T]

	// Clear removes all elements, keeping the allocated capacity.
	Clear()
}

// NewOrderedArray creates an empty OrderedArray with capacity 1.
// Order is ascending unless the Descending option is given; the direction
// is fixed for the lifetime of the instance.
//
// Example:
//
//	arr := arrays.NewOrderedArray[sortable.Int](arrays.Descending())
//	arr.InsertAll(1, 2, 3)
//	// Iterating yields: 3, 2, 1
func NewOrderedArray[T sortable.Sortable[T]](opts ...Option) OrderedArray[T] {
	options := newArrayOptions(opts)

	arraysCreated.WithLabelValues(options.name, kindOrdered).Inc()

	return &orderedArray[T]{
		storage:   newStorage[T](1, options),
		ascending: options.ascending,
	}
}

// NewOrderedArrayFrom creates an OrderedArray holding a sorted copy of
// values. The input slice is not retained or modified. The initial capacity
// is twice the element count, so the first few inserts need no reallocation.
func NewOrderedArrayFrom[T sortable.Sortable[T]](values []T, opts ...Option) OrderedArray[T] {
	options := newArrayOptions(opts)

	arraysCreated.WithLabelValues(options.name, kindOrdered).Inc()

	arr := &orderedArray[T]{
		storage:   newStorage[T](len(values)*2, options),
		ascending: options.ascending,
	}

	copy(arr.buf, values)
	arr.size = len(values)

	sort.Slice(arr.buf[:arr.size], func(i, j int) bool {
		return arr.precedes(arr.buf[i], arr.buf[j])
	})

	return arr
}

// orderedArray is the concrete OrderedArray implementation. The sortedness
// invariant holds between every pair of public calls: buf[i] never follows
// buf[i+1] in the instance's direction for any i in [0, size-1).
type orderedArray[T sortable.Sortable[T]] struct {
	storage[T]

	ascending bool
}

var _ OrderedArray[sortable.Int] = (*orderedArray[sortable.Int])(nil)

// precedes reports whether x sorts strictly before y in this instance's
// direction.
func (a *orderedArray[T]) precedes(x, y T) bool {
	if a.ascending {
		return x.LessThan(y)
	}

	return y.LessThan(x)
}

// locate binary-searches [0, size) for value. It returns (index, true) when
// an equal element exists, or (insertion index, false) otherwise — the
// insertion index being the count of elements that must precede value.
// Never reads outside [0, size); an empty array yields (0, false).
func (a *orderedArray[T]) locate(value T) (int, bool) {
	left, right := 0, a.size

	for left < right {
		mid := left + (right-left)/2
		current := a.buf[mid]

		switch {
		case current.Equals(value):
			return mid, true
		case a.precedes(current, value):
			left = mid + 1
		default:
			right = mid
		}
	}

	return left, false
}

func (a *orderedArray[T]) Insert(value T) {
	a.ensureCapacity(a.size + 1)

	index, _ := a.locate(value)
	a.insertAt(index, value)
}

func (a *orderedArray[T]) InsertAll(values ...T) {
	for _, value := range values {
		a.Insert(value)
	}
}

func (a *orderedArray[T]) Remove(index int) error {
	return a.removeAt(index)
}

func (a *orderedArray[T]) Find(value T) optional.Value[int] {
	index, found := a.locate(value)
	if !found {
		return optional.None[int]()
	}

	return optional.Some(index)
}

func (a *orderedArray[T]) Clone() OrderedArray[T] {
	return &orderedArray[T]{
		storage:   a.storage.clone(),
		ascending: a.ascending,
	}
}
