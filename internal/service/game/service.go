package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/pkg/uid"
)

const ErrGameInProgress domain.Error = "game is still in progress"

// Session is one local match between two players, possibly spanning
// several rounds through Rematch. Every read or write of the board goes
// through mu so spectators never observe a half-applied move.
type Session struct {
	GameID     string
	Players    [2]Player
	Game       *domain.Game
	Round      int
	CreatedAt  time.Time
	FinishedAt time.Time
	mu         sync.Mutex

	watchMu     sync.Mutex
	watchers    map[int]func(Snapshot)
	nextWatcher int
}

// Snapshot is a read-only copy of the session state for renderers and
// spectators.
type Snapshot struct {
	GameID        string             `json:"gameId"`
	Round         int                `json:"round"`
	Players       [2]Player          `json:"players"`
	CurrentPlayer domain.PlayerIndex `json:"currentPlayer"`
	CurrentTurn   string             `json:"currentTurn"`
	Status        domain.Status      `json:"status"`
	Winner        string             `json:"winner,omitempty"`
	WinningLine   []domain.Coord     `json:"winningLine,omitempty"`
	MoveCount     int                `json:"moveCount"`
	Board         [][]domain.Marker  `json:"board"`
	StartedAt     time.Time          `json:"startedAt"`
	FinishedAt    *time.Time         `json:"finishedAt,omitempty"`
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Player Player
	At     domain.Coord
	Status domain.Status
	Winner *Player
	Next   Player
}

type sessionOptions struct {
	first    domain.PlayerIndex
	shuffled bool
}

type Option func(*sessionOptions)

// WithFirstPlayer fixes who moves first instead of picking at random.
func WithFirstPlayer(p domain.PlayerIndex) Option {
	return func(o *sessionOptions) {
		o.first = p
		o.shuffled = false
	}
}

func NewSession(p1, p2 Player, opts ...Option) (*Session, error) {
	if p1.Name == "" || p2.Name == "" {
		return nil, ErrEmptyName
	}
	if p1.Marker == domain.Empty || p2.Marker == domain.Empty {
		return nil, ErrEmptyMarker
	}
	if p1.Marker == p2.Marker {
		return nil, ErrDuplicateMarker
	}

	o := sessionOptions{shuffled: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.shuffled {
		o.first = domain.PlayerIndex(rand.Intn(2))
	}
	if o.first != 0 && o.first != 1 {
		return nil, ErrInvalidSeat
	}

	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, err
	}

	s := &Session{
		GameID:    gameID,
		Players:   [2]Player{p1, p2},
		Game:      domain.NewGame([2]domain.Marker{p1.Marker, p2.Marker}, o.first),
		Round:     1,
		CreatedAt: time.Now(),
		watchers:  make(map[int]func(Snapshot)),
	}

	log.Printf("[SESSION] Created session %s: %s (%s) vs %s (%s), %s moves first",
		gameID, p1.Name, p1.Marker, p2.Name, p2.Marker, s.Players[o.first].Name)
	return s, nil
}

// Move places the current player's marker at (x, y). A rejected move
// leaves the turn with the same player.
func (s *Session) Move(x, y int) (MoveResult, error) {
	s.mu.Lock()

	mover := s.Game.CurrentPlayer
	if err := s.Game.MakeMove(x, y); err != nil {
		s.mu.Unlock()
		return MoveResult{}, err
	}

	result := MoveResult{
		Player: s.Players[mover],
		At:     domain.Coord{X: x, Y: y},
		Status: s.Game.Status,
		Next:   s.Players[s.Game.CurrentPlayer],
	}

	switch s.Game.Status {
	case domain.StatusWinner:
		winner := s.Players[s.Game.Winner]
		result.Winner = &winner
		s.FinishedAt = time.Now()
		log.Printf("[SESSION] Game %s round %d won by %s after %d moves",
			s.GameID, s.Round, winner.Name, s.Game.MoveCount)
	case domain.StatusDraw:
		s.FinishedAt = time.Now()
		log.Printf("[SESSION] Game %s round %d ended in a draw", s.GameID, s.Round)
	}

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return result, nil
}

// Rematch starts a new round on an empty board. The loser of the last
// round moves first; after a draw the other player opens.
func (s *Session) Rematch() error {
	s.mu.Lock()

	if !s.Game.IsFinished() {
		s.mu.Unlock()
		return ErrGameInProgress
	}

	first := s.Game.FirstPlayer.Other()
	if s.Game.Winner != domain.NoPlayer {
		first = s.Game.Winner.Other()
	}

	s.Game.Restart(first)
	s.Round++
	s.CreatedAt = time.Now()
	s.FinishedAt = time.Time{}

	log.Printf("[SESSION] Game %s starting round %d, %s moves first",
		s.GameID, s.Round, s.Players[first].Name)

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

func (s *Session) Current() Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Players[s.Game.CurrentPlayer]
}

func (s *Session) Status() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Status
}

// LegalMoves lists the cells the current player may pick.
func (s *Session) LegalMoves() []domain.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Board.LegalMoves()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked builds a snapshot, caller must hold mu
func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		GameID:        s.GameID,
		Round:         s.Round,
		Players:       s.Players,
		CurrentPlayer: s.Game.CurrentPlayer,
		CurrentTurn:   s.Players[s.Game.CurrentPlayer].Name,
		Status:        s.Game.Status,
		MoveCount:     s.Game.MoveCount,
		Board:         s.Game.Board.Render(),
		StartedAt:     s.CreatedAt,
	}

	if s.Game.Winner != domain.NoPlayer {
		snap.Winner = s.Players[s.Game.Winner].Name
	}
	if s.Game.WinningLine != nil {
		snap.WinningLine = append([]domain.Coord(nil), s.Game.WinningLine[:]...)
	}
	if !s.FinishedAt.IsZero() {
		finished := s.FinishedAt
		snap.FinishedAt = &finished
	}

	return snap
}

// Subscribe registers fn to receive a snapshot after every accepted move
// and every rematch. The returned func removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	id := s.nextWatcher
	s.nextWatcher++
	s.watchers[id] = fn

	return func() {
		s.watchMu.Lock()
		defer s.watchMu.Unlock()
		delete(s.watchers, id)
	}
}

func (s *Session) notify(snap Snapshot) {
	s.watchMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.watchMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
