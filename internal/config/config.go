package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	WatchPort      string
	AllowedOrigins []string
	FirstPlayer    string
	AllowRematch   bool
	LogFile        string
	PingInterval   time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	// Spectator view, disabled when empty
	watchPort := GetEnv("WATCH_PORT", "")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	allowedOrigins := []string{
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	firstPlayer := strings.ToLower(GetEnv("FIRST_PLAYER", "random"))
	switch firstPlayer {
	case "random", "1", "2":
	default:
		log.Printf("[CONFIG] Invalid FIRST_PLAYER %q, using random", firstPlayer)
		firstPlayer = "random"
	}

	pingSec := GetEnvAsInt("SPECTATOR_PING_SECONDS", 30)
	if pingSec <= 0 {
		pingSec = 30
	}

	AppConfig = &Config{
		WatchPort:      watchPort,
		AllowedOrigins: allowedOrigins,
		FirstPlayer:    firstPlayer,
		AllowRematch:   GetEnvAsBool("ALLOW_REMATCH", true),
		LogFile:        GetEnv("LOG_FILE", ""),
		PingInterval:   time.Duration(pingSec) * time.Second,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
