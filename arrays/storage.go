package arrays

import (
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-arrays/assert"
	"github.com/amp-labs/amp-arrays/zero"
)

// storage owns the contiguous buffer shared by both container kinds.
// len(buf) is the allocated capacity; slots in [size, len(buf)) hold zero
// values and are never exposed through the public interface.
type storage[T any] struct {
	buf    []T
	size   int
	name   string
	logger *slog.Logger
}

func newStorage[T any](capacity int, options *arrayOptions) storage[T] {
	if capacity < 1 {
		capacity = 1
	}

	return storage[T]{
		buf:    make([]T, capacity),
		name:   options.name,
		logger: options.logger,
	}
}

// ensureCapacity grows the buffer so that at least minimum slots are
// allocated. Growth doubles the current capacity, or jumps straight to
// minimum when doubling would not suffice. Existing elements keep their
// order and values; size is unchanged. Capacity never shrinks.
func (s *storage[T]) ensureCapacity(minimum int) {
	if minimum <= len(s.buf) {
		return
	}

	capacity := len(s.buf) * 2
	if capacity < minimum {
		capacity = minimum
	}

	assert.True(capacity >= minimum, "grown capacity %d below requested minimum %d", capacity, minimum)

	next := make([]T, capacity)
	copy(next, s.buf[:s.size])

	if s.logger != nil {
		s.logger.Debug("array buffer grown",
			"array", s.name,
			"capacity", capacity,
			"previous", len(s.buf),
			"size", s.size)
	}

	s.buf = next

	arrayGrowths.WithLabelValues(s.name).Inc()
}

// insertAt shifts [index, size) one slot right, highest index first, and
// places value at index. The caller must have ensured capacity for size+1.
func (s *storage[T]) insertAt(index int, value T) {
	for i := s.size; i > index; i-- {
		s.buf[i] = s.buf[i-1]
	}

	s.buf[index] = value
	s.size++

	arrayInserts.WithLabelValues(s.name).Inc()
}

// removeAt shifts (index, size) one slot left over the removed element.
// Removing the last element performs no shift.
func (s *storage[T]) removeAt(index int) error {
	if index < 0 || index >= s.size {
		return outOfRange(index, s.size)
	}

	copy(s.buf[index:], s.buf[index+1:s.size])

	s.size--
	s.buf[s.size] = zero.Value[T]()

	arrayRemovals.WithLabelValues(s.name).Inc()

	return nil
}

// Size returns the number of elements currently stored.
func (s *storage[T]) Size() int {
	return s.size
}

// Capacity returns the number of allocated buffer slots.
func (s *storage[T]) Capacity() int {
	return len(s.buf)
}

// Get returns the element at index, or ErrIndexOutOfRange when index is
// not within [0, Size()).
func (s *storage[T]) Get(index int) (T, error) {
	if index < 0 || index >= s.size {
		return zero.Value[T](), outOfRange(index, s.size)
	}

	return s.buf[index], nil
}

// Entries returns a copy of the live elements. Modifications to the
// returned slice do not affect the container.
func (s *storage[T]) Entries() []T {
	entries := make([]T, s.size)
	copy(entries, s.buf[:s.size])

	return entries
}

// Seq returns an iterator over (index, element) pairs in storage order.
// The container must not be mutated during iteration.
func (s *storage[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.size {
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}

// Clear removes all elements, keeping the allocated capacity.
func (s *storage[T]) Clear() {
	for i := range s.size {
		s.buf[i] = zero.Value[T]()
	}

	s.size = 0
}

// clone returns a deep copy of the storage with its own buffer allocation
// of the same capacity.
func (s *storage[T]) clone() storage[T] {
	next := make([]T, len(s.buf))
	copy(next, s.buf[:s.size])

	return storage[T]{
		buf:    next,
		size:   s.size,
		name:   s.name,
		logger: s.logger,
	}
}
