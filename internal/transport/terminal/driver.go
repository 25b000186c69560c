package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
)

const floatingMessage = "Error! You must make your move either:\n- In the bottom row\n- Or on top of an already filled space"

type DriverConfig struct {
	SessionOptions []game.Option
	AllowRematch   bool

	// OnSession is called once the players are known, before the first move.
	OnSession func(*game.Session)
}

// Driver runs a local two-player game over a line-based terminal. It owns
// the retry loop: the board only reports why a move was rejected.
type Driver struct {
	prompter *Prompter
	out      io.Writer
	cfg      DriverConfig
}

func NewDriver(in io.Reader, out io.Writer, cfg DriverConfig) *Driver {
	return &Driver{
		prompter: NewPrompter(in, out),
		out:      out,
		cfg:      cfg,
	}
}

// Run collects the players, then plays rounds until the game ends and no
// rematch is wanted.
func (d *Driver) Run(ctx context.Context) error {
	s, err := d.Setup()
	if err != nil {
		return err
	}
	if d.cfg.OnSession != nil {
		d.cfg.OnSession(s)
	}

	for {
		if err := d.Play(ctx, s); err != nil {
			return err
		}
		if !d.cfg.AllowRematch {
			return nil
		}

		again, err := d.prompter.Confirm("Play again? (y/n)")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		if err := s.Rematch(); err != nil {
			return err
		}
	}
}

func (d *Driver) Setup() (*game.Session, error) {
	first, err := d.collectPlayer("First player", domain.Empty)
	if err != nil {
		return nil, err
	}
	second, err := d.collectPlayer("Second player", first.Marker)
	if err != nil {
		return nil, err
	}
	return game.NewSession(first, second, d.cfg.SessionOptions...)
}

func (d *Driver) collectPlayer(label string, taken domain.Marker) (game.Player, error) {
	name, err := d.prompter.Name(label + ", enter your name:")
	if err != nil {
		return game.Player{}, err
	}
	marker, err := d.prompter.Marker("Now, choose a character to be your marker:", taken)
	if err != nil {
		return game.Player{}, err
	}
	return game.NewPlayer(name, string(marker))
}

// Play runs turns until the current round reaches a terminal state.
func (d *Driver) Play(ctx context.Context, s *game.Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		RenderBoard(d.out, s.Snapshot().Board)
		fmt.Fprintf(d.out, "It's %s's turn to pick a space.\n", s.Current().Name)

		res, err := d.takeTurn(s)
		if err != nil {
			return err
		}

		if res.Status.IsTerminal() {
			d.endgameMessage(res)
			RenderBoard(d.out, s.Snapshot().Board)
			return nil
		}
	}
}

// takeTurn asks for coordinates until the session accepts a move.
func (d *Driver) takeTurn(s *game.Session) (game.MoveResult, error) {
	for {
		x, err := d.prompter.Coordinate("X", domain.Columns-1)
		if err != nil {
			return game.MoveResult{}, err
		}
		y, err := d.prompter.Coordinate("Y", domain.Rows-1)
		if err != nil {
			return game.MoveResult{}, err
		}

		res, err := s.Move(x, y)
		switch {
		case err == nil:
			return res, nil
		case errors.Is(err, domain.ErrOccupied):
			fmt.Fprintln(d.out, "Error! That space is taken.")
		case errors.Is(err, domain.ErrFloating):
			fmt.Fprintln(d.out, floatingMessage)
			fmt.Fprintf(d.out, "Open spaces: %s\n", formatCoords(s.LegalMoves()))
		default:
			return game.MoveResult{}, err
		}
	}
}

func (d *Driver) endgameMessage(res game.MoveResult) {
	switch res.Status {
	case domain.StatusWinner:
		fmt.Fprintf(d.out, "%s wins!\n", res.Winner.Name)
	case domain.StatusDraw:
		fmt.Fprintln(d.out, "It's a tie!")
	}
}
