package calendar

import (
	"fmt"
	"strings"

	calendar "google.golang.org/api/calendar/v3"
)

// FormatEvents renders events as the bullet list shown to the user.
func FormatEvents(events []*calendar.Event) string {
	if len(events) == 0 {
		return "No events found."
	}

	var b strings.Builder
	b.WriteString("Your Events:\n\n")
	for _, ev := range events {
		start := eventTime(ev.Start)
		end := eventTime(ev.End)

		var attendees []string
		for _, a := range ev.Attendees {
			attendees = append(attendees, a.Email)
		}

		location := ev.Location
		if location == "" {
			location = "No location"
		}
		link := ev.HtmlLink
		if link == "" {
			link = "No link"
		}

		fmt.Fprintf(&b, "• **%s**\n  %s - %s\n  %s\n  Attendees: %s\n  %s\n\n",
			ev.Summary, start, end, location, strings.Join(attendees, ", "), link)
	}
	return b.String()
}

// eventTime prefers the timed value, falling back to the all-day date.
func eventTime(dt *calendar.EventDateTime) string {
	if dt == nil {
		return ""
	}
	if dt.DateTime != "" {
		return dt.DateTime
	}
	return dt.Date
}
