package game

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/connect-four/internal/domain"
)

// SessionManager tracks the sessions that can be looked up by spectators.
type SessionManager struct {
	sessions map[string]*Session // gameID → Session
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

func (sm *SessionManager) Add(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.sessions[s.GameID] = s
	log.Printf("[SESSION] Registered session %s for spectators", s.GameID)
}

func (sm *SessionManager) Get(gameID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s, exists := sm.sessions[gameID]
	return s, exists
}

func (sm *SessionManager) Remove(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[gameID]; !exists {
		return fmt.Errorf("session %s not found", gameID)
	}
	delete(sm.sessions, gameID)
	log.Printf("[SESSION] Removing session %s", gameID)
	return nil
}

// LiveGame summarizes a session for the watch listing.
type LiveGame struct {
	GameID    string
	Player1   string
	Player2   string
	Round     int
	MoveCount int
	Status    domain.Status
	StartedAt string
}

// GetActiveGames lists every registered session, oldest first.
func (sm *SessionManager) GetActiveGames() []LiveGame {
	sm.mu.RLock()
	sessions := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	games := make([]LiveGame, 0, len(sessions))
	for _, s := range sessions {
		snap := s.Snapshot()
		games = append(games, LiveGame{
			GameID:    snap.GameID,
			Player1:   snap.Players[0].Name,
			Player2:   snap.Players[1].Name,
			Round:     snap.Round,
			MoveCount: snap.MoveCount,
			Status:    snap.Status,
			StartedAt: snap.StartedAt.Format(time.RFC3339),
		})
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].StartedAt < games[j].StartedAt
	})
	return games
}
