// Package calendar is a thin adapter over the Google Calendar API: it
// translates handler parameters into API calls and formats responses.
package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const calendarID = "primary"

// Service wraps the Calendar API for the primary calendar.
type Service struct {
	svc *calendar.Service
}

// NewService creates a calendar adapter using an authenticated HTTP client.
func NewService(ctx context.Context, client *http.Client) (*Service, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Service{svc: svc}, nil
}

// ListEvents fetches events ordered by start time. timeMin, timeMax and
// query are optional; empty values are omitted from the request.
func (s *Service) ListEvents(ctx context.Context, timeMin, timeMax, query string) ([]*calendar.Event, error) {
	call := s.svc.Events.List(calendarID).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime")

	if timeMin != "" {
		call = call.TimeMin(timeMin)
	}
	if timeMax != "" {
		call = call.TimeMax(timeMax)
	}
	if query != "" {
		call = call.Q(query)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return result.Items, nil
}

// CreateEvent inserts an event and returns its link. startTime and endTime
// are RFC3339 timestamps; an empty endTime defaults to one hour after the
// start.
func (s *Service) CreateEvent(ctx context.Context, title, startTime, endTime string, attendees []string, description string) (string, error) {
	if endTime == "" {
		start, err := time.Parse(time.RFC3339, startTime)
		if err != nil {
			return "", fmt.Errorf("invalid start time %q: %w", startTime, err)
		}
		endTime = start.Add(time.Hour).Format(time.RFC3339)
	}

	event := &calendar.Event{
		Summary:     title,
		Description: description,
		Start:       &calendar.EventDateTime{DateTime: startTime, TimeZone: "UTC"},
		End:         &calendar.EventDateTime{DateTime: endTime, TimeZone: "UTC"},
	}
	for _, email := range attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := s.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	return fmt.Sprintf("Event created: %s", created.HtmlLink), nil
}
