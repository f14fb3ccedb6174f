package spiral_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/routecipher/spiral"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Coverage properties
//----------------------------------------------------------------------------//

// TestOrder_CoversGridExactlyOnce checks count, uniqueness, bounds and
// orthogonal adjacency of consecutive cells for every grid up to 9×9.
func TestOrder_CoversGridExactlyOnce(t *testing.T) {
	for w := 1; w <= 9; w++ {
		for h := 1; h <= 9; h++ {
			t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
				order, err := spiral.Order(w, h)
				require.NoError(t, err)
				require.Len(t, order, w*h)

				seen := make(map[spiral.Point]bool, w*h)
				for i, p := range order {
					require.True(t, p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h, "step %d %v outside grid", i, p)
					require.False(t, seen[p], "step %d revisits %v", i, p)
					seen[p] = true
					if i > 0 {
						prev := order[i-1]
						dist := abs(p.X-prev.X) + abs(p.Y-prev.Y)
						require.Equal(t, 1, dist, "step %d jumps %v -> %v", i, prev, p)
					}
				}

				require.Equal(t, spiral.Point{X: w - 1, Y: 0}, order[0])
				if h > 1 {
					require.Equal(t, spiral.Point{X: w - 1, Y: 1}, order[1])
				}
			})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

//----------------------------------------------------------------------------//
// Concrete orders
//----------------------------------------------------------------------------//

func TestOrder_3x3(t *testing.T) {
	want := []spiral.Point{
		{2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}, {0, 0}, {1, 0}, {1, 1},
	}
	require.Equal(t, want, mustOrder(t, 3, 3))
}

func TestOrder_9x3(t *testing.T) {
	want := []spiral.Point{
		{8, 0}, {8, 1}, {8, 2},
		{7, 2}, {6, 2}, {5, 2}, {4, 2}, {3, 2}, {2, 2}, {1, 2}, {0, 2},
		{0, 1}, {0, 0},
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0},
		{7, 1},
		{6, 1}, {5, 1}, {4, 1}, {3, 1}, {2, 1}, {1, 1},
	}
	require.Equal(t, want, mustOrder(t, 9, 3))
}

func TestOrder_SingleRowAndColumn(t *testing.T) {
	require.Equal(t, []spiral.Point{{3, 0}, {2, 0}, {1, 0}, {0, 0}}, mustOrder(t, 4, 1))
	require.Equal(t, []spiral.Point{{0, 0}, {0, 1}, {0, 2}}, mustOrder(t, 1, 3))
	require.Equal(t, []spiral.Point{{0, 0}}, mustOrder(t, 1, 1))
}

func TestOrder_EmptyGrid(t *testing.T) {
	require.Empty(t, mustOrder(t, 0, 3))
	require.Empty(t, mustOrder(t, 3, 0))
	require.Empty(t, mustOrder(t, -2, 3))
}

func TestOrder_OverflowingGrid(t *testing.T) {
	_, err := spiral.Order(math.MaxInt/2, 3)
	require.ErrorIs(t, err, spiral.ErrGridTooLarge)
}

func TestCells(t *testing.T) {
	n, err := spiral.Cells(9, 3)
	require.NoError(t, err)
	require.Equal(t, 27, n)

	n, err = spiral.Cells(0, 3)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = spiral.Cells(math.MaxInt, 2)
	require.ErrorIs(t, err, spiral.ErrGridTooLarge)
}

// mustOrder collects the visiting order, failing the test on error.
func mustOrder(t *testing.T, w, h int) []spiral.Point {
	t.Helper()
	order, err := spiral.Order(w, h)
	require.NoError(t, err)
	return order
}

//----------------------------------------------------------------------------//
// Lifecycle
//----------------------------------------------------------------------------//

func TestTraversal_Lifecycle(t *testing.T) {
	tr := spiral.New(2, 2)
	require.Equal(t, spiral.Unstarted, tr.Phase())
	require.Equal(t, spiral.Point{X: 1, Y: 0}, tr.Position())
	require.Equal(t, spiral.Down, tr.Direction())

	p, ok := tr.Next()
	require.True(t, ok)
	require.Equal(t, spiral.Point{X: 1, Y: 0}, p)
	require.Equal(t, spiral.Started, tr.Phase())

	for i := 0; i < 3; i++ {
		_, ok = tr.Next()
		require.True(t, ok)
	}
	require.Equal(t, spiral.Started, tr.Phase(), "last cell yielded while still Started")
	require.Equal(t, spiral.Point{X: 0, Y: 0}, tr.Position())

	_, ok = tr.Next()
	require.False(t, ok)
	require.Equal(t, spiral.Finished, tr.Phase())

	_, ok = tr.Next()
	require.False(t, ok, "Finished is terminal")
}

func TestTraversal_EmptyFinishesWithoutYield(t *testing.T) {
	tr := spiral.New(0, 0)
	_, ok := tr.Next()
	require.False(t, ok)
	require.Equal(t, spiral.Finished, tr.Phase())
}

func TestTraversal_AllIsNotRestartable(t *testing.T) {
	tr := spiral.New(3, 2)
	var first []spiral.Point
	for p := range tr.All() {
		first = append(first, p)
	}
	require.Len(t, first, 6)

	var second []spiral.Point
	for p := range tr.All() {
		second = append(second, p)
	}
	require.Empty(t, second)
}

func TestTraversal_AllStopsEarly(t *testing.T) {
	tr := spiral.New(4, 4)
	n := 0
	for range tr.All() {
		n++
		if n == 5 {
			break
		}
	}
	require.Equal(t, 5, n)

	// The traversal resumes after the break.
	p, ok := tr.Next()
	require.True(t, ok)
	require.Equal(t, spiral.Point{X: 1, Y: 3}, p)
}

func TestStringers(t *testing.T) {
	require.Equal(t, "(3,4)", spiral.Point{X: 3, Y: 4}.String())
	require.Equal(t, "Left", spiral.Left.String())
	require.Equal(t, "Direction(7)", spiral.Direction(7).String())
	require.Equal(t, "Finished", spiral.Finished.String())
	require.Equal(t, "Phase(5)", spiral.Phase(5).String())
}
