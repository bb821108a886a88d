package sortable

// String is a sortable wrapper type for the built-in string type.
// It implements the Sortable[String] interface, allowing strings to be
// stored in order-maintaining containers. Ordering is lexicographic by
// byte value; see NaturalString for digit-aware ordering.
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same value as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String sorts lexicographically before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
