package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
	transportHttp "github.com/iamasit07/connect-four/internal/transport/http"
	"github.com/iamasit07/connect-four/internal/transport/terminal"
	"github.com/iamasit07/connect-four/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionManager := game.NewSessionManager()
	connManager := websocket.NewConnectionManager()

	// Spectator server, only when a port is configured
	var wg sync.WaitGroup
	if cfg.WatchPort != "" {
		if os.Getenv(gin.EnvGinMode) == "" {
			gin.SetMode(gin.ReleaseMode)
		}
		wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.AllowedOrigins, cfg.PingInterval)
		watchHandler := transportHttp.NewWatchHandler(sessionManager, connManager)
		router := transportHttp.NewRouter(watchHandler, wsHandler.HandleWebSocket, cfg.AllowedOrigins)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := transportHttp.Serve(ctx, ":"+cfg.WatchPort, router); err != nil {
				log.Printf("[WATCH] Server error: %v", err)
			}
		}()
	}

	driver := terminal.NewDriver(os.Stdin, os.Stdout, terminal.DriverConfig{
		SessionOptions: sessionOptions(cfg.FirstPlayer),
		AllowRematch:   cfg.AllowRematch,
		OnSession: func(s *game.Session) {
			sessionManager.Add(s)
			s.Subscribe(connManager.Broadcast)
			if cfg.WatchPort != "" {
				fmt.Printf("Spectators can watch at ws://localhost:%s/ws?gameId=%s\n", cfg.WatchPort, s.GameID)
			}
		},
	})

	done := make(chan error, 1)
	go func() {
		done <- driver.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case runErr = <-done:
	case <-quit:
		// the driver may be blocked on stdin, so it is left behind
		fmt.Println("\nGame interrupted.")
	}

	cancel()
	connManager.CloseAll()
	wg.Wait()

	if runErr != nil && !errors.Is(runErr, terminal.ErrInputClosed) && !errors.Is(runErr, context.Canceled) {
		log.Fatalf("Game error: %v", runErr)
	}
	log.Println("Game exited")
}

// sessionOptions maps FIRST_PLAYER onto a session option; "random" keeps
// the default shuffle.
func sessionOptions(firstPlayer string) []game.Option {
	switch firstPlayer {
	case "1":
		return []game.Option{game.WithFirstPlayer(domain.PlayerIndex(0))}
	case "2":
		return []game.Option{game.WithFirstPlayer(domain.PlayerIndex(1))}
	default:
		return nil
	}
}
