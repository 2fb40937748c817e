// Command agentsim runs the mock agent backend as an HTTP service.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hupe1980/agentsim/config"
	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
	"github.com/hupe1980/agentsim/orchestrator"
	"github.com/hupe1980/agentsim/profile"
	"github.com/hupe1980/agentsim/server"
	"github.com/hupe1980/agentsim/session"
	"github.com/hupe1980/agentsim/session/sqlite"
)

func main() {
	cfg := config.Load()

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})

	prof := profile.ByName(cfg.Profile)
	logger.Info("starting agentsim", "profile", prof.Name, "port", cfg.Port, "session_backend", cfg.SessionBackend)

	var store core.SessionStore
	switch cfg.SessionBackend {
	case "sqlite":
		sqlStore, err := sqlite.New(cfg.SQLiteDSN)
		if err != nil {
			log.Fatalf("failed to initialize sqlite store: %v", err)
		}
		defer sqlStore.Close()
		store = sqlStore
	default:
		store = session.NewInMemoryStore(session.WithMaxTurns(cfg.MaxTurns))
	}

	orch := orchestrator.New(
		orchestrator.WithProfile(prof),
		orchestrator.WithSessionStore(store),
		orchestrator.WithLogger(logger),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server.NewHandler(orch).RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
