package domain

import "fmt"

// Grid is plain cell storage with no game rules. Cells are kept top row
// first; callers address them in game-space where y=0 is the bottom row.
type Grid struct {
	cells [Rows][Columns]Marker
}

func NewGrid() *Grid {
	return &Grid{}
}

// NewGridFromRows seeds a grid from rows given top row first, the same
// orientation Render produces.
func NewGridFromRows(rows [][]Marker) (*Grid, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidGrid, len(rows))
	}

	g := &Grid{}
	for r, row := range rows {
		if len(row) != Columns {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidGrid, r, len(row))
		}
		copy(g.cells[r][:], row)
	}
	return g, nil
}

// storageRow turns a bottom-up game row into the top-down storage index.
func storageRow(y int) int {
	return (Rows - 1) - y
}

func (g *Grid) Get(x, y int) (Marker, error) {
	if !InBounds(x, y) {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return g.cells[storageRow(y)][x], nil
}

func (g *Grid) Set(x, y int, m Marker) error {
	if !InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	g.cells[storageRow(y)][x] = m
	return nil
}

// at skips the bounds check, callers must pass in-bounds coordinates.
func (g *Grid) at(c Coord) Marker {
	return g.cells[storageRow(c.Y)][c.X]
}

func (g *Grid) Reset() {
	g.cells = [Rows][Columns]Marker{}
}

// Filled counts the non-empty cells.
func (g *Grid) Filled() int {
	count := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != Empty {
				count++
			}
		}
	}
	return count
}

// this creates a deep copy of the cells, top row first
func (g *Grid) Rows() [][]Marker {
	rows := make([][]Marker, Rows)
	for r := range g.cells {
		rows[r] = make([]Marker, Columns)
		copy(rows[r], g.cells[r][:])
	}
	return rows
}
