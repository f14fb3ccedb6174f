// SPDX-License-Identifier: MIT

// Package spiral defines the coordinate, direction and lifecycle types used by
// the inward spiral traversal, together with the turn tables that drive it.
package spiral

import "fmt"

// Point is a grid coordinate: X is the column, Y is the row, origin top-left.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is the heading of the current leg.
type Direction int

const (
	// Down moves towards larger Y. Every traversal starts heading Down.
	Down Direction = iota
	// Left moves towards smaller X.
	Left
	// Up moves towards smaller Y.
	Up
	// Right moves towards larger X.
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// axis names the bound that shrinks when a leg completes.
type axis int

const (
	horizontal axis = iota // remaining columns
	vertical               // remaining rows
)

// Turn tables. Each leg ends with a 90° clockwise turn; completing a vertical
// leg consumes a column and completing a horizontal leg consumes a row.
var (
	turns = [...]Direction{
		Down:  Left,
		Left:  Up,
		Up:    Right,
		Right: Down,
	}
	steps = [...]Point{
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
		Up:    {X: 0, Y: -1},
		Right: {X: 1, Y: 0},
	}
	shrinks = [...]axis{
		Down:  horizontal,
		Left:  vertical,
		Up:    horizontal,
		Right: vertical,
	}
)

// Phase is the lifecycle of a Traversal.
type Phase int

const (
	// Unstarted: the start corner has not been yielded yet.
	Unstarted Phase = iota
	// Started: at least one coordinate has been yielded and more may follow.
	Started
	// Finished is terminal: Next always reports false.
	Finished
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Unstarted:
		return "Unstarted"
	case Started:
		return "Started"
	case Finished:
		return "Finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
