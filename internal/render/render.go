// SPDX-License-Identifier: MIT

// Package render writes cipher results and grid views for the CLI.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routecipher/cipher"
	"github.com/katalvlaran/routecipher/matrix"
	"github.com/katalvlaran/routecipher/spiral"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an output format other than text, json or yaml.
var ErrUnknownFormat = errors.New("render: unknown output format")

// Result is the outcome of one encode run.
type Result struct {
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Plaintext  string `json:"plaintext" yaml:"plaintext"`
	Ciphertext string `json:"ciphertext" yaml:"ciphertext"`
}

// Printer writes to w, optionally colouring padding cells and headers.
type Printer struct {
	w           io.Writer
	padStyle    *color.Color
	headerStyle *color.Color
}

// NewPrinter returns a Printer writing to w. Colour is forced on or off
// regardless of whether w is a terminal.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:           w,
		padStyle:    color.New(color.FgYellow, color.Faint),
		headerStyle: color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.padStyle, p.headerStyle} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Result writes r in the given format: text prints the ciphertext alone.
func (p *Printer) Result(format string, r Result) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(p.w, r.Ciphertext)
		return err
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Grid writes the matrix one row per line with cells separated by a space.
// Padding cells are highlighted.
func (p *Printer) Grid(m *matrix.Matrix) error {
	var sb strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			r, err := m.At(x, y)
			if err != nil {
				return err
			}
			if m.IsPadding(x, y) {
				sb.WriteString(p.padStyle.Sprint(string(r)))
			} else {
				sb.WriteRune(r)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, sb.String())

	return err
}

// Order writes the visiting index of every cell of a width×height grid,
// right-aligned to the widest index.
func (p *Printer) Order(width, height int) error {
	n, err := spiral.Cells(width, height)
	if err != nil {
		return fmt.Errorf("render: order %dx%d: %w", width, height, err)
	}
	if n == 0 {
		return nil
	}
	order, err := spiral.Order(width, height)
	if err != nil {
		return fmt.Errorf("render: order %dx%d: %w", width, height, err)
	}
	idx := make([]int, n)
	for i, pt := range order {
		idx[pt.X+pt.Y*width] = i
	}
	cell := len(fmt.Sprint(n - 1))

	var sb strings.Builder
	sb.WriteString(p.headerStyle.Sprintf("spiral order %dx%d", width, height))
	sb.WriteByte('\n')
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", cell, idx[x+y*width])
		}
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(p.w, sb.String())

	return err
}

// Trace writes one line per step: index, coordinate and rune.
func (p *Printer) Trace(steps []cipher.Step) error {
	for i, s := range steps {
		if _, err := fmt.Fprintf(p.w, "%d\t%v\t%c\n", i, s.Point, s.Char); err != nil {
			return err
		}
	}

	return nil
}
