package mcptools

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codhiambo/sonia/internal/contacts"
	"github.com/codhiambo/sonia/internal/reminder"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := reminder.NewStore(filepath.Join(t.TempDir(), "reminders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	book := contacts.NewBook([]contacts.Contact{
		{Name: "Sarah Thompson", Email: "sarah@example.com"},
	})

	return NewServer(Services{Reminders: store, Contacts: book})
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestAddReminderRequiresText(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleAddReminder(context.Background(), toolRequest(map[string]any{}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Equal(t, "text is required", resultText(t, result))
}

func TestAddReminderRejectsUnparseableDueDate(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleAddReminder(context.Background(), toolRequest(map[string]any{
		"text":     "buy milk",
		"due_date": "sometime whenever",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "could not parse due_date")
}

func TestAddReminderAcceptsRFC3339(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleAddReminder(context.Background(), toolRequest(map[string]any{
		"text":     "buy milk",
		"due_date": "2026-09-02T17:00:00Z",
	}))
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "due 2026-09-02T17:00:00Z")
}

func TestAddReminderAcceptsNaturalLanguageDueDate(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleAddReminder(context.Background(), toolRequest(map[string]any{
		"text":     "pay rent",
		"due_date": "tomorrow at 5pm",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	reminders, err := s.svc.Reminders.List(false)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "pay rent", reminders[0].Text)
	assert.True(t, reminders[0].DueDate.After(time.Now()),
		"a natural-language due date must land in the future, not default to now")
}

func TestCompleteReminderRequiresID(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleCompleteReminder(context.Background(), toolRequest(map[string]any{}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Equal(t, "id is required and must be a positive number", resultText(t, result))
}

func TestCompleteReminderUnknownID(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleCompleteReminder(context.Background(), toolRequest(map[string]any{
		"id": float64(42),
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "no reminder with id 42")
}

func TestDeleteReminderRejectsNegativeID(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleDeleteReminder(context.Background(), toolRequest(map[string]any{
		"id": float64(-3),
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Equal(t, "id is required and must be a positive number", resultText(t, result))
}

func TestReminderRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	result, err := s.handleAddReminder(ctx, toolRequest(map[string]any{"text": "call mom"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	result, err = s.handleListReminders(ctx, toolRequest(map[string]any{}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "call mom")

	result, err = s.handleCompleteReminder(ctx, toolRequest(map[string]any{"id": float64(1)}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	result, err = s.handleListReminders(ctx, toolRequest(map[string]any{}))
	require.NoError(t, err)
	assert.Equal(t, "No reminders found.", resultText(t, result))

	result, err = s.handleListReminders(ctx, toolRequest(map[string]any{"include_completed": true}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "call mom")
}

func TestResolveContact(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleResolveContact(context.Background(), toolRequest(map[string]any{
		"name": "sarah",
	}))
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.Equal(t, "sarah@example.com", resultText(t, result))
}

func TestResolveContactNoMatch(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleResolveContact(context.Background(), toolRequest(map[string]any{
		"name": "zzz",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), `no contact matching "zzz"`)
}

func TestSendEmailRejectsBadFieldsJSON(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSendEmail(context.Background(), toolRequest(map[string]any{
		"to":       "sarah",
		"template": "meeting_request",
		"fields":   "{not json",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "fields must be a JSON object")
}

func TestSendEmailRejectsUnknownRecipient(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSendEmail(context.Background(), toolRequest(map[string]any{
		"to":       "nobody",
		"template": "meeting_request",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), `no contact matching "nobody"`)
}

func TestOptionalToolsRegisterOnlyWithServices(t *testing.T) {
	s := newTestServer(t)

	// Without calendar/gmail/news services the server still builds and the
	// required tool sets are present.
	assert.NotNil(t, s.MCPServer())
	assert.Nil(t, s.svc.Calendar)
	assert.Nil(t, s.svc.Gmail)
	assert.Nil(t, s.svc.News)
}
