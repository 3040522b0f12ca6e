package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const reminderHelp = "I can help with reminders. Try saying 'add reminder', " +
	"'show reminders', 'complete reminder', or 'delete reminder'."

const storageApology = "I couldn't reach the reminder store right now. Please try again later."

// handleReminders sub-dispatches reminder messages with the same
// substring-priority pattern the router uses.
func (a *Assistant) handleReminders(ctx context.Context, message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "add reminder") || strings.Contains(lower, "set reminder"):
		return a.addReminder(message)

	case strings.Contains(lower, "show reminders") || strings.Contains(lower, "list reminders"):
		return a.listReminders(strings.Contains(lower, "completed"))

	case strings.Contains(lower, "complete reminder"):
		return a.completeReminder(message)

	case strings.Contains(lower, "delete reminder"):
		return a.deleteReminder(message)

	default:
		return reminderHelp
	}
}

func (a *Assistant) addReminder(message string) string {
	text, err := extractReminderText(message)
	if err != nil {
		return fmt.Sprintf("Could not add reminder: %v", err)
	}

	// Due dates are not parsed out of the message yet; every reminder is
	// stamped with the creation time.
	id, err := a.reminders.Add(text, time.Now(), "")
	if err != nil {
		a.logger.Error("add reminder failed", "err", err)
		return storageApology
	}

	return fmt.Sprintf("Reminder added successfully (ID: %d)", id)
}

func (a *Assistant) listReminders(includeCompleted bool) string {
	reminders, err := a.reminders.List(includeCompleted)
	if err != nil {
		a.logger.Error("list reminders failed", "err", err)
		return storageApology
	}

	if len(reminders) == 0 {
		return "No reminders found."
	}

	var b strings.Builder
	b.WriteString("Your Reminders:\n\n")
	for _, r := range reminders {
		status := "◻"
		if r.Completed {
			status = "✓"
		}
		fmt.Fprintf(&b, "%s [%d] %s\n   Due: %s\n   Priority: %s\n\n",
			status, r.ID, r.Text, r.DueDate.Format(time.RFC3339), r.Priority)
	}
	return b.String()
}

func (a *Assistant) completeReminder(message string) string {
	id, err := parseTrailingID(message)
	if err != nil {
		return "Please specify a valid reminder ID."
	}

	ok, err := a.reminders.Complete(id)
	if err != nil {
		a.logger.Error("complete reminder failed", "err", err)
		return storageApology
	}
	if !ok {
		return fmt.Sprintf("Could not find reminder %d.", id)
	}
	return fmt.Sprintf("Reminder %d marked as completed.", id)
}

func (a *Assistant) deleteReminder(message string) string {
	id, err := parseTrailingID(message)
	if err != nil {
		return "Please specify a valid reminder ID."
	}

	ok, err := a.reminders.Delete(id)
	if err != nil {
		a.logger.Error("delete reminder failed", "err", err)
		return storageApology
	}
	if !ok {
		return fmt.Sprintf("Could not find reminder %d.", id)
	}
	return fmt.Sprintf("Reminder %d deleted.", id)
}
