package sortable

import "facette.io/natsort"

// NaturalString is a sortable wrapper type for strings that orders embedded
// digit runs numerically, so "item2" sorts before "item10". Equality is
// still plain string equality; only the ordering is natural.
//
// Example:
//
//	arr := arrays.NewOrderedArray[sortable.NaturalString]()
//	arr.Insert(sortable.NaturalString("file10"))
//	arr.Insert(sortable.NaturalString("file2"))
//	// Iterating yields: "file2", "file10"
type NaturalString string

// Compile-time check that NaturalString implements Sortable[NaturalString].
var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if this NaturalString has the same value as the other NaturalString.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this NaturalString sorts before the other NaturalString
// under natural ordering.
func (s NaturalString) LessThan(other NaturalString) bool {
	return natsort.Compare(string(s), string(other))
}
