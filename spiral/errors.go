// SPDX-License-Identifier: MIT

package spiral

import (
	"errors"
	"math"
)

// ErrGridTooLarge indicates that width*height does not fit in an int.
var ErrGridTooLarge = errors.New("spiral: grid cell count overflows int")

// Cells returns width*height, or 0 for an empty grid (width or height ≤ 0).
// Returns ErrGridTooLarge when the product overflows int.
// Complexity: O(1).
func Cells(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, nil
	}
	if width > math.MaxInt/height {
		return 0, ErrGridTooLarge
	}

	return width * height, nil
}
