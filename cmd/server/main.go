package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/reflectivai/persona-engine/pkg/agent/extractor"
	"github.com/reflectivai/persona-engine/pkg/agent/personality"
	"github.com/reflectivai/persona-engine/pkg/ai"
	"github.com/reflectivai/persona-engine/pkg/config"
	"github.com/reflectivai/persona-engine/pkg/memory"
	"github.com/reflectivai/persona-engine/pkg/server"
)

func main() {
	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		TimeFormat:      time.Kitchen,
	})

	envs, err := config.LoadConfig(true)
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Info("Starting", "app", envs.AppName, "version", envs.AppVersion, "model", envs.CompletionsModel)

	aiService, err := ai.NewOpenAIService(logger, envs.CompletionsAPIKey, envs.CompletionsAPIURL)
	if err != nil {
		logger.Fatal("Failed to initialize completions service", "error", err)
	}

	store := memory.NewInMemoryStore(logger)

	extractionAgent, err := extractor.NewAgent(logger, aiService, store, envs.CompletionsModel, envs.ExtractionTimeout)
	if err != nil {
		logger.Fatal("Failed to build extraction agent", "error", err)
	}

	engine := personality.NewEngine(logger, aiService, store, envs.CompletionsModel, envs.RequestTimeout)

	apiServer := server.New(logger, store, extractionAgent, engine, envs.AppVersion)

	httpServer := &http.Server{
		Addr:    ":" + envs.ServerPort,
		Handler: apiServer.Router(),
	}

	go func() {
		logger.Info("HTTP server listening", "port", envs.ServerPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down", "app", envs.AppName)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
