// Package gmail is a thin adapter over the Gmail API for listing,
// summarizing and sending mail.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const userID = "me"

// MessageRef identifies a message returned by a list call.
type MessageRef struct {
	ID string
}

// Summary is the subject/sender pair extracted from message metadata.
type Summary struct {
	Subject string
	Sender  string
}

// Service wraps the Gmail API for the authenticated user.
type Service struct {
	svc *gmail.Service
}

// NewService creates a Gmail adapter using an authenticated HTTP client.
func NewService(ctx context.Context, client *http.Client) (*Service, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Service{svc: svc}, nil
}

// ListMessages returns refs for messages matching the Gmail search query.
func (s *Service) ListMessages(ctx context.Context, query string, maxResults int64) ([]MessageRef, error) {
	result, err := s.svc.Users.Messages.List(userID).
		Context(ctx).
		Q(query).
		MaxResults(maxResults).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	refs := make([]MessageRef, 0, len(result.Messages))
	for _, m := range result.Messages {
		refs = append(refs, MessageRef{ID: m.Id})
	}
	return refs, nil
}

// FetchSummary fetches a message's metadata and extracts its subject and
// sender headers.
func (s *Service) FetchSummary(ctx context.Context, ref MessageRef) (Summary, error) {
	msg, err := s.svc.Users.Messages.Get(userID, ref.ID).
		Context(ctx).
		Format("metadata").
		Do()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to fetch message %s: %w", ref.ID, err)
	}

	var sum Summary
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "Subject":
				sum.Subject = h.Value
			case "From":
				sum.Sender = h.Value
			}
		}
	}
	return sum, nil
}

// FormatSummary renders one email summary line pair.
func FormatSummary(sum Summary) string {
	return fmt.Sprintf("%s\n   %s\n", sum.Subject, sum.Sender)
}

// Send populates the named template with fields and sends it to the
// recipient. Missing placeholders fail with TemplateError before any API
// call is made.
func (s *Service) Send(ctx context.Context, to, templateName string, fields map[string]string) (string, error) {
	subject, body, err := RenderTemplate(templateName, fields)
	if err != nil {
		return "", err
	}

	raw := fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", to, subject, body)
	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	if _, err := s.svc.Users.Messages.Send(userID, msg).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return "Email sent successfully.", nil
}
