package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/connect-four/internal/domain"
)

const emptyCell = "_"

// RenderBoard prints rows top first, one line per row with cells joined
// by " | ".
func RenderBoard(w io.Writer, rows [][]domain.Marker) {
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, m := range row {
			if m == domain.Empty {
				cells[i] = emptyCell
			} else {
				cells[i] = string(m)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " | "))
	}
}

func formatCoords(coords []domain.Coord) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("(%d, %d)", c.X, c.Y)
	}
	return strings.Join(parts, " ")
}
