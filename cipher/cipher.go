// SPDX-License-Identifier: MIT

// Package cipher implements the spiral route cipher: plaintext is laid into a
// width×height matrix row by row and read back along an inward spiral that
// starts at the top-right corner heading down.
package cipher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/routecipher/matrix"
	"github.com/katalvlaran/routecipher/spiral"
)

// Cipher holds the grid dimensions and matrix options shared by every
// Encode call. It has no mutable state and may be used concurrently.
type Cipher struct {
	width, height int
	opts          []matrix.Option
}

// Step is one cell of the route: where the traversal went and what it read.
type Step struct {
	spiral.Point
	Char rune
}

// New returns a Cipher over a width×height grid.
// Dimensions are validated when a matrix is built, not here.
func New(width, height int, opts ...matrix.Option) *Cipher {
	return &Cipher{width: width, height: height, opts: opts}
}

// Width returns the number of grid columns.
func (c *Cipher) Width() int { return c.width }

// Height returns the number of grid rows.
func (c *Cipher) Height() int { return c.height }

// BuildMatrix lays text into a matrix with the cipher's dimensions and options.
func (c *Cipher) BuildMatrix(text string) (*matrix.Matrix, error) {
	m, err := matrix.New(c.width, c.height, text, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("cipher: build matrix %dx%d: %w", c.width, c.height, err)
	}

	return m, nil
}

// Encode returns the ciphertext of text: width*height runes read in spiral order.
// Complexity: O(W×H + len(text)).
func (c *Cipher) Encode(text string) (string, error) {
	var sb strings.Builder
	err := c.walk(text, func(s Step) {
		sb.WriteRune(s.Char)
	})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Trace returns every step of the route in visiting order.
// Complexity: O(W×H + len(text)).
func (c *Cipher) Trace(text string) ([]Step, error) {
	var steps []Step
	err := c.walk(text, func(s Step) {
		steps = append(steps, s)
	})
	if err != nil {
		return nil, err
	}

	return steps, nil
}

// walk drives a traversal over the same dimensions the matrix was built with,
// so every yielded coordinate is addressable.
func (c *Cipher) walk(text string, visit func(Step)) error {
	if _, err := spiral.Cells(c.width, c.height); err != nil {
		return fmt.Errorf("cipher: grid %dx%d: %w", c.width, c.height, err)
	}
	m, err := c.BuildMatrix(text)
	if err != nil {
		return err
	}
	for p := range spiral.New(m.Width(), m.Height()).All() {
		r, err := m.At(p.X, p.Y)
		if err != nil {
			return fmt.Errorf("cipher: read %v: %w", p, err)
		}
		visit(Step{Point: p, Char: r})
	}

	return nil
}

// Encode is shorthand for New(width, height, opts...).Encode(text).
func Encode(width, height int, text string, opts ...matrix.Option) (string, error) {
	return New(width, height, opts...).Encode(text)
}
