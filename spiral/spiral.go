// SPDX-License-Identifier: MIT

package spiral

import "iter"

// Traversal lazily produces the inward spiral visiting order of a width×height
// grid: start at the top-right corner (width-1, 0), head Down, and turn
// clockwise (Down→Left→Up→Right) each time a leg is exhausted.
//
// A Traversal is single-use and not safe for concurrent use. It never reads
// grid contents; it only yields coordinates.
type Traversal struct {
	width, height int

	remX, remY int // columns and rows not yet fully consumed
	leg        int // moves left in the current leg
	pos        Point
	dir        Direction
	phase      Phase
}

// New returns an Unstarted traversal over a width×height grid.
// Initial position (width-1, 0), direction Down, first leg height-1 moves.
// Complexity: O(1).
func New(width, height int) *Traversal {
	return &Traversal{
		width:  width,
		height: height,
		remX:   width,
		remY:   height,
		leg:    height - 1,
		pos:    Point{X: width - 1, Y: 0},
		dir:    Down,
		phase:  Unstarted,
	}
}

// Next yields the next coordinate, or false once every cell has been visited.
// Unstarted yields the start corner; Started advances one cell, turning and
// shrinking bounds as legs run out; Finished is terminal.
// An empty grid (width or height ≤ 0) finishes without yielding anything.
// Complexity: amortised O(1).
func (t *Traversal) Next() (Point, bool) {
	switch t.phase {
	case Unstarted:
		if t.width <= 0 || t.height <= 0 {
			t.phase = Finished
			return Point{}, false
		}
		t.phase = Started
		return t.pos, true

	case Started:
		if !t.advance() {
			t.phase = Finished
			return Point{}, false
		}
		return t.pos, true

	default:
		return Point{}, false
	}
}

// advance moves one cell along the spiral. It reports false when a bound has
// shrunk to zero, i.e. the previously yielded position was the last cell.
func (t *Traversal) advance() bool {
	for t.leg == 0 {
		switch shrinks[t.dir] {
		case horizontal:
			t.remX--
			t.leg = t.remX
		case vertical:
			t.remY--
			t.leg = t.remY
		}
		t.dir = turns[t.dir]
		if t.remX <= 0 || t.remY <= 0 {
			return false
		}
	}
	t.pos = t.pos.Add(steps[t.dir])
	t.leg--

	return true
}

// All returns the remaining coordinates as a lazy sequence.
// The sequence drains the traversal: ranging over it twice yields nothing the second time.
func (t *Traversal) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for {
			p, ok := t.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Phase reports the lifecycle phase.
func (t *Traversal) Phase() Phase { return t.phase }

// Position reports the most recently yielded coordinate (the start corner while Unstarted).
func (t *Traversal) Position() Point { return t.pos }

// Direction reports the heading of the current leg.
func (t *Traversal) Direction() Direction { return t.dir }

// Order collects the full visiting order of a width×height grid.
// Returns ErrGridTooLarge when width*height overflows int.
// Complexity: O(W×H) time and memory.
func Order(width, height int) ([]Point, error) {
	n, err := Cells(width, height)
	if err != nil {
		return nil, err
	}
	out := make([]Point, 0, n)
	for p := range New(width, height).All() {
		out = append(out, p)
	}

	return out, nil
}
