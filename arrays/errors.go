package arrays

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index falls outside the live
// element range of a container. The failed call leaves the container
// completely unmodified.
var ErrIndexOutOfRange = errors.New("index out of range")

// outOfRange wraps ErrIndexOutOfRange with the offending index and the
// container size at the time of the call.
func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d with size %d", ErrIndexOutOfRange, index, size)
}
