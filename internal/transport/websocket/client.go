package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-four/internal/service/game"
)

const writeWait = 10 * time.Second

// spectator is one read-only websocket watching a single game.
type spectator struct {
	gameID string
	conn   *websocket.Conn
	send   chan ServerMessage
	done   chan struct{}
	once   sync.Once
}

func newSpectator(gameID string, conn *websocket.Conn) *spectator {
	return &spectator{
		gameID: gameID,
		conn:   conn,
		send:   make(chan ServerMessage, 16),
		done:   make(chan struct{}),
	}
}

// push queues msg without blocking the game; a spectator that cannot keep
// up misses intermediate snapshots.
func (s *spectator) push(msg ServerMessage) {
	select {
	case <-s.done:
	case s.send <- msg:
	default:
		log.Printf("[WS] Spectator of %s is lagging, dropping update", s.gameID)
	}
}

func (s *spectator) close() {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}

// writeLoop is the only goroutine writing to the socket since
// conn.WriteJSON is not safe for concurrent use.
func (s *spectator) writeLoop(pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer s.close()

	for {
		select {
		case <-s.done:
			return
		case msg := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(msg); err != nil {
				log.Printf("[WS] Write error for spectator of %s: %v", s.gameID, err)
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ConnectionManager keeps track of spectators per game.
type ConnectionManager struct {
	spectators map[string]map[*spectator]struct{}
	mu         sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		spectators: make(map[string]map[*spectator]struct{}),
	}
}

func (cm *ConnectionManager) add(s *spectator) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	set, exists := cm.spectators[s.gameID]
	if !exists {
		set = make(map[*spectator]struct{})
		cm.spectators[s.gameID] = set
	}
	set[s] = struct{}{}
}

func (cm *ConnectionManager) remove(s *spectator) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if set, exists := cm.spectators[s.gameID]; exists {
		delete(set, s)
		if len(set) == 0 {
			delete(cm.spectators, s.gameID)
		}
	}
}

// SpectatorCount returns how many sockets are watching gameID.
func (cm *ConnectionManager) SpectatorCount(gameID string) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.spectators[gameID])
}

// Broadcast sends snap to every spectator of its game.
func (cm *ConnectionManager) Broadcast(snap game.Snapshot) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	msg := snapshotMessage(snap)
	for s := range cm.spectators[snap.GameID] {
		s.push(msg)
	}
}

// CloseAll disconnects every spectator, used on shutdown.
func (cm *ConnectionManager) CloseAll() {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for _, set := range cm.spectators {
		for s := range set {
			s.close()
		}
	}
}
