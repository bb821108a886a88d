// Package sorting provides simple in-place sorting routines for slices.
package sorting

import "github.com/amp-labs/amp-arrays/sortable"

// Bubble sorts items in ascending order in place using bubble sort.
// Each pass bubbles the largest unsorted element to the end of the unsorted
// prefix; the routine exits early as soon as a full pass performs no swap,
// so already-sorted input costs a single O(n) pass.
//
// Bubble sort is O(n²) in the worst case. Prefer the standard library's
// sort package for large inputs; this routine exists for small slices and
// for its adaptive best case.
func Bubble[T sortable.Sortable[T]](items []T) {
	BubbleFunc(items, func(a, b T) bool {
		return a.LessThan(b)
	})
}

// BubbleFunc sorts items in place using bubble sort with less as the
// ordering. It has the same cost profile and early exit as Bubble.
func BubbleFunc[T any](items []T, less func(a, b T) bool) {
	if len(items) == 0 {
		return
	}

	unsortedUntil := len(items) - 1
	sorted := false

	for !sorted {
		sorted = true

		for i := range unsortedUntil {
			if less(items[i+1], items[i]) {
				items[i], items[i+1] = items[i+1], items[i]
				sorted = false
			}
		}

		unsortedUntil--
	}
}
