package sortable

// Float64 is a sortable wrapper type for the built-in float64 type.
// It implements the Sortable[Float64] interface, allowing floating-point
// values to be stored in order-maintaining containers.
//
// NaN values compare as neither less than nor equal to anything, including
// themselves. Storing NaN in an ordered container breaks the ordering
// invariant; callers must filter NaN out before insertion.
type Float64 float64

// Compile-time check that Float64 implements Sortable[Float64].
var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if this Float64 has the same value as the other Float64.
func (f Float64) Equals(other Float64) bool {
	return float64(f) == float64(other)
}

// LessThan returns true if this Float64 is numerically less than the other Float64.
func (f Float64) LessThan(other Float64) bool {
	return float64(f) < float64(other)
}
