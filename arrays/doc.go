// Package arrays provides contiguous, dynamically-resizable array containers.
//
// # Overview
//
// Two container kinds share the same storage model (a contiguous buffer with
// explicit size and capacity, growing by doubling):
//
//   - [OrderedArray] keeps its elements sorted at all times. Insertion places
//     each element at its binary-search position, so lookups run in O(log n)
//     comparisons while every insert or remove costs at most one O(n) shift.
//   - [DynamicArray] is the unordered variant with positional insert, set,
//     and append; lookups are linear scans.
//
// Elements of an OrderedArray must implement
// [github.com/amp-labs/amp-arrays/sortable.Sortable]; elements of a
// DynamicArray only need
// [github.com/amp-labs/amp-arrays/compare.Comparable].
//
// # Usage
//
//	arr := arrays.NewOrderedArrayFrom([]sortable.Int{5, 3, 8, 1})
//	for _, v := range arr.Seq() {
//	    fmt.Println(int(v)) // 1, 3, 5, 8
//	}
//
//	arr.Insert(sortable.Int(4))
//	index := arr.Find(sortable.Int(4)) // Some(2)
//
// Lookups that can miss return [github.com/amp-labs/amp-arrays/optional.Value]
// instead of a sentinel index. Index-based operations return
// [ErrIndexOutOfRange] for indices outside the live range and leave the
// container untouched when they fail.
//
// # Storage behavior
//
// Capacity starts at 1 (or twice the initial element count for the From
// constructors), never shrinks, and doubles whenever an insertion would
// overflow the buffer. Growth reallocates; it is the only operation whose
// cost is unconditionally O(n). Entries returns a copy, and Clone deep-copies
// the buffer, so no two containers ever alias the same storage.
//
// # Thread Safety
//
// Containers in this package are not thread-safe. They assume exclusive,
// sequential access by a single owner; concurrent use requires external
// synchronization.
package arrays
