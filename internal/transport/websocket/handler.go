package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-four/internal/service/game"
)

// Handler upgrades spectator connections and streams game snapshots to
// them. Spectators never send moves; anything they write is discarded.
type Handler struct {
	ConnManager  *ConnectionManager
	Sessions     *game.SessionManager
	Upgrader     websocket.Upgrader
	PingInterval time.Duration
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, allowedOrigins []string, pingInterval time.Duration) *Handler {
	return &Handler{
		ConnManager:  cm,
		Sessions:     sm,
		PingInterval: pingInterval,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == origin {
						return true
					}
				}
				log.Printf("[WS] Rejected origin %s", origin)
				return false
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket serves GET /ws?gameId=<id>.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	session, exists := h.Sessions.Get(gameID)
	if !exists {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	s := newSpectator(gameID, conn)
	h.ConnManager.add(s)
	log.Printf("[WS] Spectator %s joined game %s (%d watching)", r.RemoteAddr, gameID, h.ConnManager.SpectatorCount(gameID))

	defer func() {
		h.ConnManager.remove(s)
		s.close()
		log.Printf("[WS] Spectator left game %s", gameID)
	}()

	s.push(snapshotMessage(session.Snapshot()))
	go s.writeLoop(h.PingInterval)

	readWait := 2 * h.PingInterval
	conn.SetReadDeadline(time.Now().Add(readWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Read error for spectator of %s: %v", gameID, err)
			}
			return
		}
		s.push(errorMessage("spectators cannot send messages"))
	}
}
