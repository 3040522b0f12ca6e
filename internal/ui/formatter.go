package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	UserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Bright cyan
			Bold(true)

	AssistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")) // Soft green

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // Coral red
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // Warm yellow

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Medium gray
			Italic(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Formatter renders the CLI's chrome: prompts, prefixes, the welcome box
// and the help screen. All colour goes through here so -no-color can turn
// everything off in one place.
type Formatter struct {
	colored  bool
	provider string
}

func NewFormatter(colored bool, provider string) *Formatter {
	return &Formatter{
		colored:  colored,
		provider: formatProviderName(provider),
	}
}

func formatProviderName(provider string) string {
	switch provider {
	case "gemini":
		return "Gemini"
	case "deepseek":
		return "DeepSeek"
	default:
		if len(provider) > 0 {
			return strings.ToUpper(provider[:1]) + provider[1:]
		}
		return "AI"
	}
}

func (f *Formatter) FormatUserMessage(msg string) string {
	prefix := "You: "
	if f.colored {
		prefix = UserStyle.Render("You: ")
	}
	return prefix + msg
}

func (f *Formatter) FormatAssistantMessage(msg string) string {
	prefix := "Sonia: "
	if f.colored {
		prefix = AssistantStyle.Render("Sonia: ")
	}
	return prefix + msg
}

func (f *Formatter) FormatError(err error) string {
	prefix := "Error: "
	if f.colored {
		prefix = ErrorStyle.Render("Error: ")
	}
	return prefix + err.Error()
}

func (f *Formatter) FormatInfo(info string) string {
	if f.colored {
		return InfoStyle.Render(info)
	}
	return info
}

func (f *Formatter) FormatStatus(msg string) string {
	if f.colored {
		return StatusStyle.Render(msg)
	}
	return msg
}

// FormatPrompt returns the readline input prompt.
func (f *Formatter) FormatPrompt() string {
	if f.colored {
		promptStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
		arrowStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)
		return promptStyle.Render("you") + arrowStyle.Render(" > ")
	}
	return "you > "
}

func (f *Formatter) FormatWelcome(model string) string {
	if f.colored {
		titleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

		labelStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

		valueStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

		subtitleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

		borderStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

		topBorder := borderStyle.Render("╭─────────────────────────────────────────╮")
		bottomBorder := borderStyle.Render("╰─────────────────────────────────────────╯")
		sideBorder := borderStyle.Render("│")

		title := titleStyle.Render(fmt.Sprintf("Sonia • %s", f.provider))
		modelLine := labelStyle.Render("Model: ") + valueStyle.Render(model)
		helpLine := subtitleStyle.Render("Type /help for commands")

		padLine := func(content string, width int) string {
			contentLen := lipgloss.Width(content)
			if contentLen < width {
				return content + strings.Repeat(" ", width-contentLen)
			}
			return content
		}

		boxWidth := 39
		lines := []string{
			"",
			topBorder,
			sideBorder + " " + padLine(title, boxWidth) + " " + sideBorder,
			sideBorder + " " + padLine(modelLine, boxWidth) + " " + sideBorder,
			sideBorder + " " + padLine("", boxWidth) + " " + sideBorder,
			sideBorder + " " + padLine(helpLine, boxWidth) + " " + sideBorder,
			bottomBorder,
			"",
		}

		return strings.Join(lines, "\n")
	}

	lines := []string{
		"",
		fmt.Sprintf("Sonia • %s", f.provider),
		fmt.Sprintf("Model: %s", model),
		"Type /help for commands",
		"",
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) FormatHelp() string {
	if f.colored {
		headerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

		cmdStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

		dimStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

		formatCmd := func(cmd, desc string) string {
			return "  " + cmdStyle.Render(cmd) + " " + descStyle.Render(desc)
		}

		lines := []string{
			"",
			headerStyle.Render("Commands"),
			"",
			formatCmd("/help", "Show this help"),
			formatCmd("/reminders", "List open reminders"),
			formatCmd("/contacts", "List known contacts"),
			formatCmd("/quit", "Exit"),
			"",
			headerStyle.Render("Tips"),
			dimStyle.Render("  Anything else goes straight to Sonia"),
			dimStyle.Render("  Ctrl+C or Ctrl+D to exit"),
			"",
		}

		return strings.Join(lines, "\n")
	}

	lines := []string{
		"",
		"Commands:",
		"  /help       - Show help",
		"  /reminders  - List open reminders",
		"  /contacts   - List known contacts",
		"  /quit       - Exit",
		"",
		"Anything else goes straight to Sonia.",
		"",
	}

	return strings.Join(lines, "\n")
}
