package ui

import (
	"fmt"
)

// StatusDisplay prints transient single-line status messages, overwriting
// the previous one with an ANSI erase. Disabled it is a no-op, so callers
// never need to guard it.
type StatusDisplay struct {
	formatter *Formatter
	enabled   bool
}

func NewStatusDisplay(formatter *Formatter, enabled bool) *StatusDisplay {
	return &StatusDisplay{
		formatter: formatter,
		enabled:   enabled,
	}
}

func (s *StatusDisplay) Show(message string) {
	if !s.enabled {
		return
	}

	fmt.Print("\r\033[K")
	fmt.Print(s.formatter.FormatStatus(message))
}

func (s *StatusDisplay) Hide() {
	if !s.enabled {
		return
	}

	fmt.Print("\r\033[K")
}
