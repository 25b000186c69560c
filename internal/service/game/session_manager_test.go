package game

import (
	"testing"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager(t *testing.T) {
	sm := NewSessionManager()
	s := newTestSession(t, 0)

	_, ok := sm.Get(s.GameID)
	assert.False(t, ok)

	sm.Add(s)
	got, ok := sm.Get(s.GameID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, err := s.Move(3, 0)
	require.NoError(t, err)

	games := sm.GetActiveGames()
	require.Len(t, games, 1)
	assert.Equal(t, s.GameID, games[0].GameID)
	assert.Equal(t, "Alice", games[0].Player1)
	assert.Equal(t, "Bob", games[0].Player2)
	assert.Equal(t, 1, games[0].MoveCount)
	assert.Equal(t, domain.StatusOngoing, games[0].Status)

	require.NoError(t, sm.Remove(s.GameID))
	assert.Error(t, sm.Remove(s.GameID))
	assert.Empty(t, sm.GetActiveGames())
}
