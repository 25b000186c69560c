package game

import (
	"strings"

	"github.com/iamasit07/connect-four/internal/domain"
)

type Player struct {
	Name   string        `json:"name"`
	Marker domain.Marker `json:"marker"`
}

// NewPlayer trims the raw name and marker and rejects empty values.
func NewPlayer(name, marker string) (Player, error) {
	name = strings.TrimSpace(name)
	marker = strings.TrimSpace(marker)

	if name == "" {
		return Player{}, ErrEmptyName
	}
	if marker == "" {
		return Player{}, ErrEmptyMarker
	}

	return Player{Name: name, Marker: domain.Marker(marker)}, nil
}

const (
	ErrEmptyName       domain.Error = "player name must not be empty"
	ErrEmptyMarker     domain.Error = "player marker must not be empty"
	ErrDuplicateMarker domain.Error = "players must use different markers"
	ErrInvalidSeat     domain.Error = "first player must be 0 or 1"
)
