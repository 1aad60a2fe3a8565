package responder

import "math/rand/v2"

// Picker is the randomness provider behind every pool selection.
// IntN returns a value in [0, n). *rand.Rand from math/rand/v2 satisfies it,
// but is not safe for concurrent use.
type Picker interface {
	IntN(n int) int
}

// globalPicker uses the goroutine-safe top-level math/rand/v2 source.
type globalPicker struct{}

func (globalPicker) IntN(n int) int {
	return rand.IntN(n)
}

// pick draws one element uniformly from pool. pool must be non-empty.
func pick[T any](p Picker, pool []T) T {
	return pool[p.IntN(len(pool))]
}
