// Package main is the entry point for the life simulation game server.
// It only handles dependency injection and server initialization.
// NO business logic belongs here.
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

	"github.com/mrjones-game/life-server/internal/actions"
	"github.com/mrjones-game/life-server/internal/chat"
	"github.com/mrjones-game/life-server/internal/config"
	"github.com/mrjones-game/life-server/internal/engine"
	"github.com/mrjones-game/life-server/internal/events"
	"github.com/mrjones-game/life-server/internal/infra/ai"
	"github.com/mrjones-game/life-server/internal/infra/storage"
	"github.com/mrjones-game/life-server/internal/network"
	"github.com/mrjones-game/life-server/internal/platform/logger"
)

func main() {
	log.Println("[LIFE-SERVER] Initializing life simulation server...")

	appLogger := logger.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("Configuration error: " + err.Error())
		os.Exit(1)
	}

	appLogger.Info("Opening SQLite database at " + cfg.DBPath + "...")
	db, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to initialize SQLite: " + err.Error())
		os.Exit(1)
	}
	defer db.Close()

	playerStore := storage.NewSQLiteStore(db)
	journal := events.NewJournal(storage.NewSQLiteJournal(db))

	appLogger.Info("Building action catalogue...")
	catalog := actions.NewCatalog()

	gameEngine := engine.New(playerStore, catalog, journal, appLogger)

	appLogger.Info("Bootstrapping LLM provider: " + cfg.LLMProvider)
	budgetGate := ai.NewBudgetGate(cfg.DailyBudgetUSD, cfg.MonthlyBudgetUSD)
	var provider ai.LLMProvider
	switch cfg.LLMProvider {
	case "anthropic":
		provider = ai.NewAnthropicProvider(cfg.AnthropicKey, cfg.AnthropicModel, budgetGate)
	default:
		provider = ai.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, budgetGate)
	}
	if !provider.IsAvailable() {
		appLogger.Warn(provider.Name() + " API key not configured; NPC chat will be unavailable")
	}

	bridge := chat.NewBridge(gameEngine, provider, appLogger)

	mux := http.NewServeMux()
	api := network.NewAPI(gameEngine, bridge, journal, appLogger)
	api.Register(mux)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		appLogger.Info("HTTP API listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	log.Println("[LIFE-SERVER] Server running. Press Ctrl+C to exit.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[LIFE-SERVER] Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
	}
}
