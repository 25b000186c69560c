package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindows_Count(t *testing.T) {
	all := Windows()
	require.Len(t, all, 69)

	byDirection := map[Coord]int{}
	for _, w := range all {
		step := Coord{X: w[1].X - w[0].X, Y: w[1].Y - w[0].Y}
		byDirection[step]++
	}

	assert.Equal(t, 24, byDirection[Coord{X: 1, Y: 0}], "horizontal")
	assert.Equal(t, 21, byDirection[Coord{X: 0, Y: 1}], "vertical")
	assert.Equal(t, 12, byDirection[Coord{X: 1, Y: 1}], "rising diagonal")
	assert.Equal(t, 12, byDirection[Coord{X: 1, Y: -1}], "falling diagonal")
}

func TestWindows_Shape(t *testing.T) {
	seen := map[Window]bool{}
	for _, w := range Windows() {
		require.False(t, seen[w], "duplicate window %v", w)
		seen[w] = true

		step := Coord{X: w[1].X - w[0].X, Y: w[1].Y - w[0].Y}
		for i, c := range w {
			assert.True(t, InBounds(c.X, c.Y), "window %v leaves the grid", w)
			if i > 0 {
				assert.Equal(t, step, Coord{X: c.X - w[i-1].X, Y: c.Y - w[i-1].Y}, "window %v is not a straight run", w)
			}
		}
	}
}

func TestWindows_ReturnsCopy(t *testing.T) {
	first := Windows()
	first[0][0] = Coord{X: 99, Y: 99}

	assert.Equal(t, Coord{X: 0, Y: 0}, Windows()[0][0])
}
