// Package repl provides the interactive terminal front end. It feeds lines
// straight into the assistant router, so the CLI and the webhook behave
// identically for the same message.
package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/codhiambo/sonia/internal/assistant"
	"github.com/codhiambo/sonia/internal/config"
	"github.com/codhiambo/sonia/internal/contacts"
	"github.com/codhiambo/sonia/internal/reminder"
	"github.com/codhiambo/sonia/internal/ui"
)

type REPL struct {
	assistant *assistant.Assistant
	reminders *reminder.Store
	contacts  *contacts.Book
	cfg       *config.Config
	rl        *readline.Instance
	formatter *ui.Formatter
	status    *ui.StatusDisplay
	renderer  *renderer
}

func New(a *assistant.Assistant, store *reminder.Store, book *contacts.Book, cfg *config.Config) (*REPL, error) {
	formatter := ui.NewFormatter(cfg.UI.ColoredOutput, cfg.Provider)

	rl, err := setupReadline(formatter.FormatPrompt())
	if err != nil {
		return nil, fmt.Errorf("failed to setup readline: %w", err)
	}

	rend, err := newRenderer(cfg.UI.ColoredOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to setup renderer: %w", err)
	}

	return &REPL{
		assistant: a,
		reminders: store,
		contacts:  book,
		cfg:       cfg,
		rl:        rl,
		formatter: formatter,
		status:    ui.NewStatusDisplay(formatter, true),
		renderer:  rend,
	}, nil
}

func (r *REPL) Start(ctx context.Context) error {
	defer r.rl.Close()

	r.displayWelcome()

	for {
		input, err := r.readInput()
		if err != nil {
			if isEOF(err) {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if input == "" {
			continue
		}

		isCommand, command := parseCommand(input)
		if isCommand {
			if command == "/quit" || command == "/exit" || command == "/q" {
				fmt.Println("Goodbye!")
				return nil
			}
			if err := r.handleCommand(command); err != nil {
				r.displayError(err)
			}
			continue
		}

		r.handleMessage(ctx, input)
	}
}

func (r *REPL) handleMessage(ctx context.Context, message string) {
	r.status.Show("Thinking...")
	reply := r.assistant.Respond(ctx, message)
	r.status.Hide()
	r.displayReply(reply)
}

func (r *REPL) handleCommand(command string) error {
	switch command {
	case "/help", "/h":
		r.displayHelp()
		return nil

	case "/reminders", "/r":
		reminders, err := r.reminders.List(false)
		if err != nil {
			return fmt.Errorf("could not load reminders: %w", err)
		}
		if len(reminders) == 0 {
			r.displayInfo("No open reminders.")
			return nil
		}
		var b strings.Builder
		for _, rem := range reminders {
			fmt.Fprintf(&b, "[%d] %s (due %s, %s)\n",
				rem.ID, rem.Text, rem.DueDate.Format("Mon Jan 2 15:04"), rem.Priority)
		}
		r.displayInfo(strings.TrimRight(b.String(), "\n"))
		return nil

	case "/contacts":
		all := r.contacts.All()
		if len(all) == 0 {
			r.displayInfo("No contacts configured.")
			return nil
		}
		var b strings.Builder
		for _, c := range all {
			fmt.Fprintf(&b, "%s <%s>\n", c.Name, c.Email)
		}
		r.displayInfo(strings.TrimRight(b.String(), "\n"))
		return nil

	default:
		return fmt.Errorf("unknown command %q (try /help)", command)
	}
}
