package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpapi "filler-game/internal/api/http"
	"filler-game/internal/api/ws"
	"filler-game/internal/config"
	"filler-game/internal/room"
	"filler-game/internal/store"
	"filler-game/internal/telemetry"
)

// @title Filler Game API
// @version 1.0
// @description REST and WebSocket API for two-party flood-fill sessions (Go + Gin)
// @BasePath /
func main() {
	// Not fatal: env vars might be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	mem := store.NewMemoryStore()
	rm, err := room.NewManager(mem, cfg)
	if err != nil {
		log.Fatalf("room manager: %v", err)
	}
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)
	go rm.RunReaper(ctx, cfg.ReapInterval)

	r := httpapi.NewRouter(rm, hub)

	log.Printf("listening on %s (board %dx%d, bot depth %d)", cfg.HTTPAddr, cfg.BoardSize, cfg.BoardSize, cfg.BotDepth)
	errc := make(chan error, 1)
	go func() { errc <- r.Run(cfg.HTTPAddr) }()

	select {
	case err := <-errc:
		log.Fatal(err)
	case <-ctx.Done():
		log.Printf("shutting down")
	}
}
