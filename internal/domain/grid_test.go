package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_OutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"negative column", -1, 0},
		{"column past right edge", 7, 0},
		{"negative row", 0, -1},
		{"row past top", 0, 6},
		{"both out", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid()

			_, err := g.Get(tt.x, tt.y)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			err = g.Set(tt.x, tt.y, "X")
			assert.ErrorIs(t, err, ErrOutOfBounds)
			assert.Zero(t, g.Filled())
		})
	}
}

func TestGrid_BottomRowIsStoredLast(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Set(0, 0, "X"))
	require.NoError(t, g.Set(6, 5, "O"))

	rows := g.Rows()
	assert.Equal(t, Marker("X"), rows[5][0])
	assert.Equal(t, Marker("O"), rows[0][6])

	m, err := g.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Marker("X"), m)
}

func TestGrid_SetOverwrites(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Set(3, 4, "X"))
	require.NoError(t, g.Set(3, 4, "O"))

	m, err := g.Get(3, 4)
	require.NoError(t, err)
	assert.Equal(t, Marker("O"), m)
	assert.Equal(t, 1, g.Filled())
}

func TestNewGridFromRows(t *testing.T) {
	rows := emptyRows()
	rows[5][2] = "X"
	rows[4][2] = "O"

	g, err := NewGridFromRows(rows)
	require.NoError(t, err)

	m, _ := g.Get(2, 0)
	assert.Equal(t, Marker("X"), m)
	m, _ = g.Get(2, 1)
	assert.Equal(t, Marker("O"), m)

	// the grid keeps its own copy
	rows[5][2] = "Z"
	if diff := cmp.Diff(Marker("X"), g.Rows()[5][2]); diff != "" {
		t.Errorf("seeded grid changed (-want +got):\n%s", diff)
	}
}

func TestNewGridFromRows_InvalidShape(t *testing.T) {
	_, err := NewGridFromRows(emptyRows()[:5])
	assert.ErrorIs(t, err, ErrInvalidGrid)

	rows := emptyRows()
	rows[3] = rows[3][:6]
	_, err = NewGridFromRows(rows)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestGrid_Reset(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Set(1, 0, "X"))
	g.Reset()

	assert.Zero(t, g.Filled())
	if diff := cmp.Diff(emptyRows(), g.Rows()); diff != "" {
		t.Errorf("grid not empty after reset (-want +got):\n%s", diff)
	}
}

func emptyRows() [][]Marker {
	rows := make([][]Marker, Rows)
	for i := range rows {
		rows[i] = make([]Marker, Columns)
	}
	return rows
}

// rowsFromStrings builds a fixture top row first, '_' is an empty cell.
func rowsFromStrings(t *testing.T, lines ...string) [][]Marker {
	t.Helper()
	require.Len(t, lines, Rows)

	rows := make([][]Marker, Rows)
	for r, line := range lines {
		require.Len(t, line, Columns)
		rows[r] = make([]Marker, Columns)
		for c, ch := range line {
			if ch != '_' {
				rows[r][c] = Marker(string(ch))
			}
		}
	}
	return rows
}
