package domain

import "fmt"

// Board owns a single Grid and enforces the placement and win rules on it.
// It does no I/O and never retries: a rejected placement leaves the grid
// untouched and the caller decides what to do next.
type Board struct {
	grid *Grid
}

func NewBoard() *Board {
	return &Board{grid: NewGrid()}
}

// NewBoardFromGrid takes ownership of g. The grid is not checked against
// the gravity rule so fixtures can seed any position.
func NewBoardFromGrid(g *Grid) *Board {
	if g == nil {
		g = NewGrid()
	}
	return &Board{grid: g}
}

// Cell reads a single cell in game-space.
func (b *Board) Cell(x, y int) (Marker, error) {
	return b.grid.Get(x, y)
}

// AttemptPlace writes m at (x, y) if the cell is empty and supported from
// below. Occupancy is checked before support.
func (b *Board) AttemptPlace(x, y int, m Marker) error {
	if !InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	if m == Empty {
		return ErrInvalidMarker
	}

	if err := b.checkPlacement(x, y); err != nil {
		return err
	}

	return b.grid.Set(x, y, m)
}

func (b *Board) checkPlacement(x, y int) error {
	if b.grid.at(Coord{X: x, Y: y}) != Empty {
		return ErrOccupied
	}

	// a marker may never have an empty cell directly beneath it
	if y > 0 && b.grid.at(Coord{X: x, Y: y - 1}) == Empty {
		return ErrFloating
	}

	return nil
}

// LegalMoves lists the cells where AttemptPlace would currently succeed,
// left to right. Pre-seeded grids may expose more than one per column.
func (b *Board) LegalMoves() []Coord {
	moves := []Coord{}
	for x := 0; x < Columns; x++ {
		for y := 0; y < Rows; y++ {
			if b.checkPlacement(x, y) == nil {
				moves = append(moves, Coord{X: x, Y: y})
			}
		}
	}
	return moves
}

// WinningWindow returns the first window, in Windows order, whose cells
// all hold the same marker.
func (b *Board) WinningWindow() (Window, bool) {
	for _, w := range windows {
		first := b.grid.at(w[0])
		if first == Empty {
			continue
		}

		complete := true
		for _, c := range w[1:] {
			if b.grid.at(c) != first {
				complete = false
				break
			}
		}
		if complete {
			return w, true
		}
	}
	return Window{}, false
}

func (b *Board) IsFull() bool {
	return b.grid.Filled() == Rows*Columns
}

// Status classifies the board. A full board holding a line is a win, not
// a draw.
func (b *Board) Status() Status {
	if _, won := b.WinningWindow(); won {
		return StatusWinner
	}
	if b.IsFull() {
		return StatusDraw
	}
	return StatusOngoing
}

// Render is a copy of the cells with the top row first, ready to print.
func (b *Board) Render() [][]Marker {
	return b.grid.Rows()
}

// Reset empties the board for a new game.
func (b *Board) Reset() {
	b.grid.Reset()
}
