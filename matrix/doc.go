// SPDX-License-Identifier: MIT

// Package matrix stores route-cipher plaintext as a fixed-size character grid.
//
// What:
//
//   - Matrix holds the uppercased (and, by default, letters-only) source text
//     in a flat row-major buffer addressed by x + y*width.
//   - The grid is width×height regardless of the source length: reads past
//     the end of the source return the padding rune ('X' by default).
//   - Reads outside the declared width/height fail with *OutOfBoundsError.
//
// Options:
//
//   - WithPadding: rune returned for cells past the end of the source.
//   - WithFilter: FilterLetters (default) or FilterNone.
//
// Errors:
//
//   - ErrOutOfBounds: coordinate outside the declared grid (via *OutOfBoundsError).
//   - ErrInvalidDimensions: negative width or height.
//
// Complexity:
//
//   - New: O(len(text)), At: O(1), String: O(W×H).
package matrix
