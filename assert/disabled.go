//go:build assertions_disabled

// Package assert provides internal invariant checks that panic on violation.
// Assertions guard conditions that indicate a bug in this module, never bad
// caller input; compile with the assertions_disabled tag to strip them.
package assert

// True is a no-op when assertions are disabled.
func True(_ bool, _ ...any) {}

// False is a no-op when assertions are disabled.
func False(_ bool, _ ...any) {}
