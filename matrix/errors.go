// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public accessors MUST return these sentinels (or a typed error that matches
// them through errors.Is) and tests MUST check them via errors.Is / errors.As.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates that a coordinate lies outside the declared
	// width/height. At returns it wrapped in *OutOfBoundsError.
	ErrOutOfBounds = errors.New("matrix: coordinate out of bounds")

	// ErrInvalidDimensions indicates that a requested width or height is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")
)

// OutOfBoundsError carries the offending coordinate and the declared grid
// dimensions. It matches ErrOutOfBounds under errors.Is.
type OutOfBoundsError struct {
	X, Y          int // requested coordinate
	Width, Height int // declared dimensions of the matrix
}

// Error renders the coordinate against the largest addressable x and y.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("Tried to access x=%d and y=%d but max x=%d and max y=%d",
		e.X, e.Y, e.Width-1, e.Height-1)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
