// SPDX-License-Identifier: MIT

// Package matrix - padded character storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the normalised source in a flat rune slice addressed by x + y*width.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Pad on read: the buffer is never resized to width*height.
//
// Complexity quicksheet:
//   - New: O(len(text)); At: O(1); Row: O(width); String: O(width*height).

package matrix

import "strings"

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
)

// Matrix is an immutable width×height grid of runes backed by the normalised
// source text. Cells past the end of the source read as the padding rune.
// A Matrix is never mutated after New and may be shared for concurrent reads.
type Matrix struct {
	width, height int    // declared dimensions, owned by value
	cells         []rune // normalised source, len may differ from width*height
	padding       rune   // returned for addressable cells past len(cells)
}

// New builds a width×height Matrix from text.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Prepare): resolve options and normalise text.
// Stage 3 (Finalize): return the Matrix.
//
// Zero width or height is accepted and yields a grid with no addressable
// cells; callers that need a non-empty grid validate before calling.
// Source runes beyond width*height are kept but never addressable.
// Complexity: O(len(text)).
func New(width, height int, text string, opts ...Option) (*Matrix, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Matrix{
		width:   width,
		height:  height,
		cells:   Normalize(text, o.filter),
		padding: o.padding,
	}, nil
}

// Width returns the declared number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the declared number of rows.
func (m *Matrix) Height() int { return m.height }

// Len returns the number of normalised source runes held by the matrix.
func (m *Matrix) Len() int { return len(m.cells) }

// Padding returns the rune substituted for cells past the end of the source.
func (m *Matrix) Padding() rune { return m.padding }

// InBounds reports whether (x,y) lies within the declared dimensions.
// Complexity: O(1).
func (m *Matrix) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsPadding reports whether (x,y) is addressable but lies past the end of the source.
func (m *Matrix) IsPadding(x, y int) bool {
	return m.InBounds(x, y) && m.index(x, y) >= len(m.cells)
}

// At returns the rune at (x,y).
// Stage 1 (Validate): *OutOfBoundsError when x or y falls outside the declared grid.
// Stage 2 (Execute): read cells[x + y*width], or the padding rune when the
// source is shorter than that index (defined behavior, not an error).
// Complexity: O(1).
func (m *Matrix) At(x, y int) (rune, error) {
	if !m.InBounds(x, y) {
		return 0, &OutOfBoundsError{X: x, Y: y, Width: m.width, Height: m.height}
	}
	idx := m.index(x, y)
	if idx >= len(m.cells) {
		return m.padding, nil
	}

	return m.cells[idx], nil
}

// Row returns row y as a string of width runes, padding included.
// Complexity: O(width).
func (m *Matrix) Row(y int) (string, error) {
	if y < 0 || y >= m.height {
		return "", &OutOfBoundsError{X: 0, Y: y, Width: m.width, Height: m.height}
	}
	var sb strings.Builder
	for x := 0; x < m.width; x++ {
		r, _ := m.At(x, y) // in range by construction
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(width*height).
func (m *Matrix) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		row, _ := m.Row(y)
		sb.WriteString(_fmtRowOpen)
		sb.WriteString(row)
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// index maps (x,y) to the row-major offset x + y*width.
func (m *Matrix) index(x, y int) int {
	return x + y*m.width
}
