package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderer turns the assistant's replies into terminal output. Replies are
// plain text most of the time, but the chat fallback can produce markdown,
// so colored sessions run everything through glamour.
type renderer struct {
	term *glamour.TermRenderer
}

func newRenderer(colored bool) (*renderer, error) {
	if !colored {
		return &renderer{}, nil
	}

	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, err
	}
	return &renderer{term: term}, nil
}

func (r *renderer) render(text string) string {
	if r.term == nil {
		return text
	}
	out, err := r.term.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (r *REPL) displayReply(reply string) {
	fmt.Println()
	fmt.Println(r.formatter.FormatAssistantMessage(""))
	fmt.Println(r.renderer.render(reply))
	fmt.Println()
}

func (r *REPL) displayError(err error) {
	r.status.Hide()
	fmt.Println(r.formatter.FormatError(err))
	fmt.Println()
}

func (r *REPL) displayWelcome() {
	model := r.cfg.Gemini.Model
	if r.cfg.Provider == "deepseek" {
		model = r.cfg.DeepSeek.Model
	}
	fmt.Print(r.formatter.FormatWelcome(model))
}

func (r *REPL) displayHelp() {
	fmt.Print(r.formatter.FormatHelp())
}

func (r *REPL) displayInfo(msg string) {
	fmt.Println(r.formatter.FormatInfo(msg))
	fmt.Println()
}
