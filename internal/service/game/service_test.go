package game

import (
	"sync"
	"testing"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, first domain.PlayerIndex) *Session {
	t.Helper()
	alice, err := NewPlayer("Alice", "X")
	require.NoError(t, err)
	bob, err := NewPlayer("Bob", "O")
	require.NoError(t, err)

	s, err := NewSession(alice, bob, WithFirstPlayer(first))
	require.NoError(t, err)
	return s
}

func TestNewPlayer(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		marker  string
		want    Player
		wantErr error
	}{
		{"trims input", "  Joey ", " $ ", Player{Name: "Joey", Marker: "$"}, nil},
		{"multi character marker", "Lisa", "%%", Player{Name: "Lisa", Marker: "%%"}, nil},
		{"blank name", "   ", "X", Player{}, ErrEmptyName},
		{"blank marker", "Joey", "", Player{}, ErrEmptyMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPlayer(tt.inName, tt.marker)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSession_Validation(t *testing.T) {
	x := Player{Name: "Alice", Marker: "X"}

	_, err := NewSession(x, Player{Name: "Bob", Marker: "X"})
	assert.ErrorIs(t, err, ErrDuplicateMarker)

	_, err = NewSession(x, Player{Name: "", Marker: "O"})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewSession(x, Player{Name: "Bob"})
	assert.ErrorIs(t, err, ErrEmptyMarker)

	_, err = NewSession(x, Player{Name: "Bob", Marker: "O"}, WithFirstPlayer(2))
	assert.ErrorIs(t, err, ErrInvalidSeat)
}

func TestNewSession_RandomFirstPlayer(t *testing.T) {
	s, err := NewSession(Player{Name: "Alice", Marker: "X"}, Player{Name: "Bob", Marker: "O"})
	require.NoError(t, err)

	assert.Contains(t, []string{"Alice", "Bob"}, s.Current().Name)
	assert.NotEmpty(t, s.GameID)
	assert.Equal(t, 1, s.Round)
}

func TestSession_Move(t *testing.T) {
	s := newTestSession(t, 1)

	res, err := s.Move(3, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bob", res.Player.Name)
	assert.Equal(t, "Alice", res.Next.Name)
	assert.Equal(t, domain.StatusOngoing, res.Status)
	assert.Nil(t, res.Winner)

	_, err = s.Move(3, 0)
	assert.ErrorIs(t, err, domain.ErrOccupied)
	_, err = s.Move(4, 1)
	assert.ErrorIs(t, err, domain.ErrFloating)
	_, err = s.Move(9, 0)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)
	assert.Equal(t, "Alice", s.Current().Name)

	snap := s.Snapshot()
	assert.Equal(t, domain.Marker("O"), snap.Board[domain.Rows-1][3])
	assert.Equal(t, 1, snap.MoveCount)
}

func TestSession_WinAndRematch(t *testing.T) {
	s := newTestSession(t, 0)

	// Alice fills the bottom row from the left, Bob stacks on top
	moves := []domain.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 0}}
	var last MoveResult
	for _, c := range moves {
		var err error
		last, err = s.Move(c.X, c.Y)
		require.NoError(t, err)
	}

	require.Equal(t, domain.StatusWinner, last.Status)
	require.NotNil(t, last.Winner)
	assert.Equal(t, "Alice", last.Winner.Name)

	snap := s.Snapshot()
	assert.Equal(t, "Alice", snap.Winner)
	assert.Len(t, snap.WinningLine, domain.ToWin)
	assert.NotNil(t, snap.FinishedAt)

	_, err := s.Move(4, 0)
	assert.ErrorIs(t, err, domain.ErrGameFinished)

	require.NoError(t, s.Rematch())
	assert.Equal(t, 2, s.Round)
	assert.Equal(t, "Bob", s.Current().Name, "loser opens the rematch")
	assert.Equal(t, domain.StatusOngoing, s.Status())
	assert.Len(t, s.LegalMoves(), domain.Columns)

	assert.ErrorIs(t, s.Rematch(), ErrGameInProgress)
}

func TestSession_SubscribeReceivesSnapshots(t *testing.T) {
	s := newTestSession(t, 0)

	var mu sync.Mutex
	var got []Snapshot
	cancel := s.Subscribe(func(snap Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, snap)
	})

	_, err := s.Move(0, 0)
	require.NoError(t, err)
	_, err = s.Move(0, 5)
	require.Error(t, err)

	cancel()
	_, err = s.Move(1, 0)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1, "only accepted moves before cancel are published")
	assert.Equal(t, "Bob", got[0].CurrentTurn)
	assert.Equal(t, domain.Marker("X"), got[0].Board[domain.Rows-1][0])
}

func TestSession_ConcurrentMovesKeepGravity(t *testing.T) {
	s := newTestSession(t, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := 0; y < domain.Rows; y++ {
				_, _ = s.Move(2, y)
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	seenEmpty := false
	for r := domain.Rows - 1; r >= 0; r-- {
		if snap.Board[r][2] == domain.Empty {
			seenEmpty = true
			continue
		}
		assert.False(t, seenEmpty, "gap below storage row %d", r)
	}
}
