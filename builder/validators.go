// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

// validateRange ensures min ≤ got ≤ max.
// Returns "<Method>: n=<got> < min=<min>" wrapping ErrTooFewVertices, or
// "<Method>: n=<got> > max=<max>" wrapping ErrTooManyVertices.
//
// Complexity: O(1) time and space.
func validateRange(method string, got, min, max int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewVertices)
	}
	if got > max {
		return builderErrorf(method, "n=%d > max=%d: %w", got, max, ErrTooManyVertices)
	}

	return nil
}
