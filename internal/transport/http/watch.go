package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/internal/service/game"
)

// SpectatorCounter reports how many live spectators a game has.
type SpectatorCounter interface {
	SpectatorCount(gameID string) int
}

type WatchHandler struct {
	SessionManager *game.SessionManager
	Spectators     SpectatorCounter
}

func NewWatchHandler(sm *game.SessionManager, spectators SpectatorCounter) *WatchHandler {
	return &WatchHandler{SessionManager: sm, Spectators: spectators}
}

type liveGameResponse struct {
	GameID         string `json:"gameId"`
	Player1        string `json:"player1"`
	Player2        string `json:"player2"`
	Round          int    `json:"round"`
	Status         string `json:"status"`
	SpectatorCount int    `json:"spectatorCount"`
	MoveCount      int    `json:"moveCount"`
	StartedAt      string `json:"startedAt"`
}

// GetLiveGames returns every game available for spectating
func (h *WatchHandler) GetLiveGames(c *gin.Context) {
	activeGames := h.SessionManager.GetActiveGames()

	response := make([]liveGameResponse, 0, len(activeGames))
	for _, g := range activeGames {
		response = append(response, liveGameResponse{
			GameID:         g.GameID,
			Player1:        g.Player1,
			Player2:        g.Player2,
			Round:          g.Round,
			Status:         string(g.Status),
			SpectatorCount: h.spectatorCount(g.GameID),
			MoveCount:      g.MoveCount,
			StartedAt:      g.StartedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetGame returns the full snapshot of one game
func (h *WatchHandler) GetGame(c *gin.Context) {
	session, exists := h.SessionManager.Get(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

func (h *WatchHandler) spectatorCount(gameID string) int {
	if h.Spectators == nil {
		return 0
	}
	return h.Spectators.SpectatorCount(gameID)
}
