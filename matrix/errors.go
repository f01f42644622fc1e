// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public accessors return these sentinels (wrapped with call-site context)
// and tests check them via errors.Is. No accessor panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
// Callers wrap with fmt.Errorf("ctx: %w", ErrX); errors.Is still matches.
var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
