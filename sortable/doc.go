// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of ordered containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Float64], [Byte], [String],
// and [NaturalString]. These types are designed to work with order-maintaining
// collections (see [github.com/amp-labs/amp-arrays/arrays.NewOrderedArray]) and
// with the sorting routines in [github.com/amp-labs/amp-arrays/sorting].
//
// The Sortable interface extends [github.com/amp-labs/amp-arrays/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when you need ordered collections:
//
//	// Create an ordered array of integers
//	arr := arrays.NewOrderedArray[sortable.Int]()
//	arr.Insert(sortable.Int(42))
//	arr.Insert(sortable.Int(10))
//	arr.Insert(sortable.Int(25))
//
//	// Elements are yielded in sorted order: 10, 25, 42
//	for _, val := range arr.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// LessThan must describe a strict weak ordering that is consistent with Equals:
// if a.Equals(b), then neither a.LessThan(b) nor b.LessThan(a) may hold.
// Ordered containers rely on this consistency during binary search.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. However, collections using these types may not be
// thread-safe and require external synchronization for concurrent access.
package sortable
