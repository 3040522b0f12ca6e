// Command sonia-cli is the local interactive front end to the assistant.
// Lines go through the same intent router as the webhook, so it is the
// quickest way to exercise reminders, news and chat without running HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/codhiambo/sonia/internal/assistant"
	"github.com/codhiambo/sonia/internal/config"
	"github.com/codhiambo/sonia/internal/contacts"
	"github.com/codhiambo/sonia/internal/llm"
	"github.com/codhiambo/sonia/internal/news"
	"github.com/codhiambo/sonia/internal/reminder"
	"github.com/codhiambo/sonia/internal/repl"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	providerName := flag.String("provider", "", "Provider to use (gemini, deepseek)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if *providerName != "" {
		cfg.Provider = *providerName
	}
	if *noColor {
		cfg.UI.ColoredOutput = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Reminders.DBPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}
	store, err := reminder.NewStore(cfg.Reminders.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening reminder database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating provider: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	book := contacts.NewBook(seedContacts(cfg.Contacts))

	a := assistant.New(assistant.Options{
		Reminders:    store,
		News:         news.NewClient(cfg.News.APIKey, cfg.News.BaseURL),
		NewsPageSize: cfg.News.PageSize,
		Provider:     provider,
		// The REPL owns the terminal; keep routing logs out of it.
		Logger: log.New(io.Discard),
	})

	r, err := repl.New(a, store, book, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating REPL: %v\n", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()

	if err := r.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func seedContacts(seed []config.ContactSeed) []contacts.Contact {
	out := make([]contacts.Contact, 0, len(seed))
	for _, s := range seed {
		out = append(out, contacts.Contact{Name: s.Name, Email: s.Email})
	}
	return out
}
