package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateGameID returns a random 16 character hex ID for a game session.
func GenerateGameID() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate game ID: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
