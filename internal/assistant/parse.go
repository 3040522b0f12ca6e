package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// extractReminderText pulls the reminder body out of an "add reminder"
// style message: everything after the word "reminder", cut at the first
// "on" and then the first "at". The slicing is deliberately simple; it
// mirrors how users phrase "add reminder buy milk at 5pm".
func extractReminderText(message string) (string, error) {
	lower := strings.ToLower(message)

	// Keyword offsets are computed on the lowered copy. Lowering can change
	// byte offsets (e.g. U+0130), in which case the lowered text is sliced
	// instead of the original so indices always stay in bounds.
	src := message
	if len(lower) != len(message) {
		src = lower
	}

	idx := strings.Index(lower, "reminder")
	if idx < 0 {
		return "", fmt.Errorf("no reminder text found")
	}

	rest := src[idx+len("reminder"):]
	lowerRest := lower[idx+len("reminder"):]
	if cut := strings.Index(lowerRest, "on"); cut >= 0 {
		rest, lowerRest = rest[:cut], lowerRest[:cut]
	}
	if cut := strings.Index(lowerRest, "at"); cut >= 0 {
		rest = rest[:cut]
	}

	text := strings.TrimSpace(rest)
	if text == "" {
		return "", fmt.Errorf("no reminder text found")
	}
	return text, nil
}

// parseTrailingID reads the reminder id from the last token of the
// message, as in "complete reminder 3".
func parseTrailingID(message string) (int64, error) {
	fields := strings.Fields(message)
	if len(fields) == 0 {
		return 0, fmt.Errorf("no id in message")
	}

	id, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid reminder id %q", fields[len(fields)-1])
	}
	return id, nil
}

var dateParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseDueDate resolves a natural-language date ("tomorrow at 5pm")
// relative to ref. It fails explicitly when no date is recognized.
//
// Note: reminder creation from chat messages does not call this; due
// dates there are stamped with the current time. Callers that accept an
// explicit due-date string (the MCP tools) use it.
func ParseDueDate(text string, ref time.Time) (time.Time, error) {
	r, err := dateParser.Parse(text, ref)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("no date found in %q", text)
	}
	return r.Time, nil
}
