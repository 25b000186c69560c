package websocket

import "github.com/iamasit07/connect-four/internal/service/game"

type ServerMessage struct {
	Type    string         `json:"type"`
	Message string         `json:"message,omitempty"`
	Game    *game.Snapshot `json:"game,omitempty"`
}

func snapshotMessage(snap game.Snapshot) ServerMessage {
	return ServerMessage{Type: "snapshot", Game: &snap}
}

func errorMessage(msg string) ServerMessage {
	return ServerMessage{Type: "error", Message: msg}
}
