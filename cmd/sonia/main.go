// Command sonia runs the assistant's webhook server.
//
// It accepts natural-language messages on POST /webhook (plain JSON or
// Twilio form posts) and replies with the assistant's answer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/codhiambo/sonia/internal/assistant"
	"github.com/codhiambo/sonia/internal/config"
	"github.com/codhiambo/sonia/internal/llm"
	"github.com/codhiambo/sonia/internal/news"
	"github.com/codhiambo/sonia/internal/reminder"
	"github.com/codhiambo/sonia/internal/server"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	host := flag.String("host", "", "Listen host (overrides config)")
	port := flag.Int("port", 0, "Listen port (overrides config)")
	flag.Parse()

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		if cfg.Provider == config.ProviderGemini {
			fmt.Fprintf(os.Stderr, "Tip: Set GOOGLE_API_KEY environment variable or add it to the config file\n")
		}
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)

	if err := os.MkdirAll(filepath.Dir(cfg.Reminders.DBPath), 0o755); err != nil {
		logger.Fatal("failed to create data directory", "err", err)
	}
	store, err := reminder.NewStore(cfg.Reminders.DBPath)
	if err != nil {
		logger.Fatal("failed to open reminder database", "path", cfg.Reminders.DBPath, "err", err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create LLM provider", "provider", cfg.Provider, "err", err)
	}
	defer provider.Close()

	a := assistant.New(assistant.Options{
		Reminders:    store,
		News:         news.NewClient(cfg.News.APIKey, cfg.News.BaseURL),
		NewsPageSize: cfg.News.PageSize,
		Provider:     provider,
		Logger:       logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := server.New(addr, a, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		logger.Info("shutting down", "signal", sig)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "err", err)
		}
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}
