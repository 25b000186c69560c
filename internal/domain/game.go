package domain

// PlayerIndex identifies a seat, 0 or 1. NoPlayer marks an unset winner.
type PlayerIndex int

const NoPlayer PlayerIndex = -1

func (p PlayerIndex) Other() PlayerIndex {
	return 1 - p
}

// Game drives one board through alternating turns. The mover who
// completes a line is the winner since only their marker could have
// just formed it.
type Game struct {
	Board         *Board
	Markers       [2]Marker
	CurrentPlayer PlayerIndex
	FirstPlayer   PlayerIndex
	Status        Status
	Winner        PlayerIndex
	WinningLine   *Window
	MoveCount     int
}

func NewGame(markers [2]Marker, first PlayerIndex) *Game {
	return &Game{
		Board:         NewBoard(),
		Markers:       markers,
		CurrentPlayer: first,
		FirstPlayer:   first,
		Status:        StatusOngoing,
		Winner:        NoPlayer,
	}
}

func (g *Game) MakeMove(x, y int) error {
	if g.IsFinished() {
		return ErrGameFinished
	}

	if err := g.Board.AttemptPlace(x, y, g.Markers[g.CurrentPlayer]); err != nil {
		return err
	}
	g.MoveCount++

	g.Status = g.Board.Status()
	switch g.Status {
	case StatusWinner:
		g.Winner = g.CurrentPlayer
		if line, ok := g.Board.WinningWindow(); ok {
			g.WinningLine = &line
		}
	case StatusOngoing:
		g.CurrentPlayer = g.CurrentPlayer.Other()
	}

	return nil
}

func (g *Game) IsFinished() bool {
	return g.Status.IsTerminal()
}

// Restart clears the board and hands the first move to first.
func (g *Game) Restart(first PlayerIndex) {
	g.Board.Reset()
	g.CurrentPlayer = first
	g.FirstPlayer = first
	g.Status = StatusOngoing
	g.Winner = NoPlayer
	g.WinningLine = nil
	g.MoveCount = 0
}
