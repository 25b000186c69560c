package domain

// Window is one run of ToWin coordinates that wins when every cell holds
// the same marker.
type Window [ToWin]Coord

// scan directions in game-space: right, up, up-right, down-right
var directions = [][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

var windows = buildWindows()

// buildWindows enumerates every in-bounds window by trying each cell as a
// start point in each direction.
func buildWindows() []Window {
	var out []Window
	for _, dir := range directions {
		dx, dy := dir[0], dir[1]
		for x := 0; x < Columns; x++ {
			for y := 0; y < Rows; y++ {
				endX, endY := x+dx*(ToWin-1), y+dy*(ToWin-1)
				if !InBounds(endX, endY) {
					continue
				}

				var w Window
				for i := 0; i < ToWin; i++ {
					w[i] = Coord{X: x + dx*i, Y: y + dy*i}
				}
				out = append(out, w)
			}
		}
	}
	return out
}

// Windows returns a copy of the precomputed windows: horizontal first,
// then vertical, then both diagonals.
func Windows() []Window {
	out := make([]Window, len(windows))
	copy(out, windows)
	return out
}
