// Package assistant routes inbound natural-language messages to their
// handlers: reminder CRUD, news fetching, or the LLM chat fallback.
package assistant

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/codhiambo/sonia/internal/llm"
	"github.com/codhiambo/sonia/internal/news"
	"github.com/codhiambo/sonia/internal/reminder"
)

// Options carries the collaborators an Assistant needs. Everything is
// injected here once at startup; there is no package-level service state.
type Options struct {
	Reminders    *reminder.Store
	News         *news.Client
	NewsPageSize int
	Provider     llm.Provider
	Logger       *log.Logger
}

// Assistant dispatches one message at a time. It holds no per-request
// state; concurrent use is safe as long as its collaborators are.
type Assistant struct {
	reminders    *reminder.Store
	news         *news.Client
	newsPageSize int
	provider     llm.Provider
	logger       *log.Logger
	routes       []route
}

// New builds an Assistant with its routing table.
func New(opts Options) *Assistant {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	pageSize := opts.NewsPageSize
	if pageSize <= 0 {
		pageSize = 5
	}

	a := &Assistant{
		reminders:    opts.Reminders,
		news:         opts.News,
		newsPageSize: pageSize,
		provider:     opts.Provider,
		logger:       logger,
	}
	a.routes = buildRoutes(a)
	return a
}

// Respond classifies the message and returns the handler's reply. Handlers
// convert their own foreseeable failures into user-facing strings, so this
// never returns an error.
func (a *Assistant) Respond(ctx context.Context, message string) string {
	for _, r := range a.routes {
		if r.match(message) {
			a.logger.Debug("routing message", "intent", r.name)
			return r.handle(ctx, message)
		}
	}
	// Unreachable: the chat fallback matches everything.
	return a.handleChat(ctx, message)
}
