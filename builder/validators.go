// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// validators.go - parameter checks returning wrapped sentinels.

package builder

import "fmt"

// validateMin ensures that got ≥ min.
// Returns "<method>: <name>=<got> < min=<min>: ErrTooFewVertices" otherwise.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
