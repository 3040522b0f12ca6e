// Command mcp-assistant exposes the assistant's services over the MCP
// protocol (stdio transport).
//
// Reminder and contact tools are always available. Calendar and Gmail
// tools register only when Google credentials are configured, and news
// tools only when a NewsAPI key is present.
//
// Usage:
//
//	./mcp-assistant          # Start MCP server (stdio)
//	./mcp-assistant --help   # Show help
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codhiambo/sonia/internal/calendar"
	"github.com/codhiambo/sonia/internal/config"
	"github.com/codhiambo/sonia/internal/contacts"
	"github.com/codhiambo/sonia/internal/gmail"
	"github.com/codhiambo/sonia/internal/googleauth"
	"github.com/codhiambo/sonia/internal/mcptools"
	"github.com/codhiambo/sonia/internal/news"
	"github.com/codhiambo/sonia/internal/reminder"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// REMINDER_DB_PATH keeps working for setups that only want the
	// reminder tools and no config file.
	dbPath := os.Getenv("REMINDER_DB_PATH")
	if dbPath == "" {
		dbPath = cfg.Reminders.DBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	store, err := reminder.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	svc := mcptools.Services{
		Reminders: store,
		Contacts:  contacts.NewBook(seedContacts(cfg.Contacts)),
	}

	// Google services are optional; without a token only their tools are
	// left out.
	if httpClient, err := googleauth.Client(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile); err == nil {
		if cal, err := calendar.NewService(ctx, httpClient); err == nil {
			svc.Calendar = cal
		}
		if gm, err := gmail.NewService(ctx, httpClient); err == nil {
			svc.Gmail = gm
		}
	}

	if cfg.News.APIKey != "" {
		svc.News = news.NewClient(cfg.News.APIKey, cfg.News.BaseURL)
	}

	s := mcptools.NewServer(svc)

	if err := server.ServeStdio(s.MCPServer()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
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

func printHelp() {
	fmt.Println(`MCP Assistant Server - assistant tools via the MCP protocol

USAGE:
    mcp-assistant            Start MCP server (communicates via stdio)
    mcp-assistant --help     Show this help

ENVIRONMENT:
    REMINDER_DB_PATH  Path to SQLite database file
                      Default: ~/.sonia/reminders.db
    NEWS_API_KEY      NewsAPI key (enables the fetch_news tool)

TOOLS:
    add_reminder       Add a reminder (natural-language due dates supported)
    list_reminders     List reminders
    complete_reminder  Mark a reminder as completed
    delete_reminder    Delete a reminder permanently
    resolve_contact    Resolve a name fragment to an email address
    list_events        List upcoming calendar events (needs Google token)
    create_event       Create a calendar event (needs Google token)
    list_emails        List recent emails (needs Google token)
    send_email         Send a templated email (needs Google token)
    fetch_news         Fetch recent headlines (needs NEWS_API_KEY)`)
}
