package domain

// Marker is the value a player drops into a cell. Any non-empty string is
// a legal marker, Empty is reserved for unfilled cells.
type Marker string

const Empty Marker = ""

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Coord is a game-space position: X is the column counted from the left,
// Y is the row counted from the bottom.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func InBounds(x, y int) bool {
	return x >= 0 && x < Columns && y >= 0 && y < Rows
}

// to represent the game status
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWinner  Status = "winner"
	StatusDraw    Status = "draw"
)

func (s Status) IsTerminal() bool {
	return s == StatusWinner || s == StatusDraw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfBounds   Error = "coordinate out of bounds"
	ErrOccupied      Error = "cell is occupied"
	ErrFloating      Error = "cell has nothing beneath it"
	ErrInvalidMarker Error = "marker must not be empty"
	ErrInvalidGrid   Error = "grid must be 6 rows of 7 cells"
	ErrGameFinished  Error = "game already finished"
)
