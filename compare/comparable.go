// Package compare defines the equality capability required of container elements.
package compare

// Comparable is the interface for types that can decide equality with
// another value of the same type. Containers use it to match elements
// during lookups; what "equal" means is entirely up to the implementing type.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals reports whether a and b are equal by delegating to a's Equals method.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
