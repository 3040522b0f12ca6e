// Package mcptools exposes the assistant's capabilities as MCP tools so
// other agents can drive reminders, contacts, calendar, email and news over
// the MCP protocol.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codhiambo/sonia/internal/assistant"
	"github.com/codhiambo/sonia/internal/calendar"
	"github.com/codhiambo/sonia/internal/contacts"
	"github.com/codhiambo/sonia/internal/gmail"
	"github.com/codhiambo/sonia/internal/news"
	"github.com/codhiambo/sonia/internal/reminder"
)

const (
	serverName    = "sonia-assistant"
	serverVersion = "1.0.0"
)

// Services collects the backends the tool server can expose. Reminders and
// Contacts are required; the rest register their tools only when non-nil,
// so the server stays useful without Google credentials or a news key.
type Services struct {
	Reminders *reminder.Store
	Contacts  *contacts.Book
	Calendar  *calendar.Service
	Gmail     *gmail.Service
	News      *news.Client
}

// Server is the MCP server wrapping the assistant's services.
type Server struct {
	mcpServer *server.MCPServer
	svc       Services
}

// NewServer creates the MCP server and registers a tool per available
// service.
func NewServer(svc Services) *Server {
	s := &Server{svc: svc}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	s.registerReminderTools()
	s.registerContactTools()
	if svc.Calendar != nil {
		s.registerCalendarTools()
	}
	if svc.Gmail != nil {
		s.registerGmailTools()
	}
	if svc.News != nil {
		s.registerNewsTools()
	}
	return s
}

// MCPServer returns the underlying MCP server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerReminderTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("add_reminder",
			mcp.WithDescription("Add a reminder. The due date may be RFC3339 or natural language like 'tomorrow at 5pm'"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Reminder text")),
			mcp.WithString("due_date", mcp.Description("Due date, RFC3339 or natural language (default: now)")),
			mcp.WithString("priority", mcp.Description("Priority: low, medium, high (default: medium)")),
		),
		s.handleAddReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_reminders",
			mcp.WithDescription("List reminders, pending only by default"),
			mcp.WithBoolean("include_completed", mcp.Description("Include completed reminders")),
		),
		s.handleListReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("complete_reminder",
			mcp.WithDescription("Mark a reminder as completed"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Reminder ID")),
		),
		s.handleCompleteReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("delete_reminder",
			mcp.WithDescription("Delete a reminder permanently"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Reminder ID")),
		),
		s.handleDeleteReminder,
	)
}

func (s *Server) registerContactTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("resolve_contact",
			mcp.WithDescription("Resolve a name fragment to an email address"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name or fragment, e.g. 'sarah'")),
		),
		s.handleResolveContact,
	)
}

func (s *Server) registerCalendarTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list_events",
			mcp.WithDescription("List upcoming calendar events"),
			mcp.WithString("time_min", mcp.Description("Window start in RFC3339 (default: now)")),
			mcp.WithString("time_max", mcp.Description("Window end in RFC3339 (default: 7 days out)")),
			mcp.WithString("query", mcp.Description("Free-text search within events")),
		),
		s.handleListEvents,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("create_event",
			mcp.WithDescription("Create a calendar event"),
			mcp.WithString("title", mcp.Required(), mcp.Description("Event title")),
			mcp.WithString("start_time", mcp.Required(), mcp.Description("Start time in RFC3339")),
			mcp.WithString("end_time", mcp.Description("End time in RFC3339 (default: one hour after start)")),
			mcp.WithString("attendees", mcp.Description("Comma-separated attendee names or fragments, resolved against the contact list")),
			mcp.WithString("description", mcp.Description("Event description")),
		),
		s.handleCreateEvent,
	)
}

func (s *Server) registerGmailTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list_emails",
			mcp.WithDescription("List recent emails with subject and sender"),
			mcp.WithString("query", mcp.Description("Gmail search query, e.g. 'is:unread'")),
			mcp.WithNumber("max_results", mcp.Description("Maximum messages to return (default: 5)")),
		),
		s.handleListEmails,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("send_email",
			mcp.WithDescription("Send a templated email to a contact"),
			mcp.WithString("to", mcp.Required(), mcp.Description("Recipient name or fragment, resolved against the contact list")),
			mcp.WithString("template", mcp.Required(), mcp.Description("Template name, e.g. meeting_request")),
			mcp.WithString("fields", mcp.Description("Template fields as a JSON object, e.g. {\"title\":\"Sync\"}")),
		),
		s.handleSendEmail,
	)
}

func (s *Server) registerNewsTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("fetch_news",
			mcp.WithDescription("Fetch recent news headlines"),
			mcp.WithString("category", mcp.Description("Category: technology, business, sports, health, science")),
			mcp.WithString("search", mcp.Description("Free-text search; overrides category")),
		),
		s.handleFetchNews,
	)
}

func (s *Server) handleAddReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	dueDateStr := req.GetString("due_date", "")
	priority := req.GetString("priority", "")

	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	dueDate := time.Now()
	if dueDateStr != "" {
		parsed, err := time.Parse(time.RFC3339, dueDateStr)
		if err != nil {
			parsed, err = assistant.ParseDueDate(dueDateStr, time.Now())
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("could not parse due_date %q: %v", dueDateStr, err)), nil
		}
		dueDate = parsed
	}

	if priority == "" {
		priority = reminder.PriorityMedium
	}

	id, err := s.svc.Reminders.Add(text, dueDate, priority)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add reminder: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Reminder %d added, due %s.", id, dueDate.Format(time.RFC3339))), nil
}

func (s *Server) handleListReminders(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	includeCompleted := req.GetBool("include_completed", false)

	reminders, err := s.svc.Reminders.List(includeCompleted)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list reminders: %v", err)), nil
	}

	if len(reminders) == 0 {
		return mcp.NewToolResultText("No reminders found."), nil
	}

	output, _ := json.MarshalIndent(reminders, "", "  ")
	return mcp.NewToolResultText(string(output)), nil
}

func (s *Server) handleCompleteReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, result := reminderID(req)
	if result != nil {
		return result, nil
	}

	found, err := s.svc.Reminders.Complete(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to complete reminder: %v", err)), nil
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("no reminder with id %d", id)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Reminder %d marked as completed.", id)), nil
}

func (s *Server) handleDeleteReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, result := reminderID(req)
	if result != nil {
		return result, nil
	}

	found, err := s.svc.Reminders.Delete(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete reminder: %v", err)), nil
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("no reminder with id %d", id)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Reminder %d deleted.", id)), nil
}

func reminderID(req mcp.CallToolRequest) (int64, *mcp.CallToolResult) {
	idFloat := req.GetFloat("id", -1)
	if idFloat < 0 {
		return 0, mcp.NewToolResultError("id is required and must be a positive number")
	}
	return int64(idFloat), nil
}

func (s *Server) handleResolveContact(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	email, ok := s.svc.Contacts.Resolve(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no contact matching %q", name)), nil
	}

	return mcp.NewToolResultText(email), nil
}

func (s *Server) handleListEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := time.Now()
	timeMin := req.GetString("time_min", now.Format(time.RFC3339))
	timeMax := req.GetString("time_max", now.Add(7*24*time.Hour).Format(time.RFC3339))
	query := req.GetString("query", "")

	events, err := s.svc.Calendar.ListEvents(ctx, timeMin, timeMax, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list events: %v", err)), nil
	}

	return mcp.NewToolResultText(calendar.FormatEvents(events)), nil
}

func (s *Server) handleCreateEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	startTime := req.GetString("start_time", "")
	if title == "" || startTime == "" {
		return mcp.NewToolResultError("title and start_time are required"), nil
	}
	endTime := req.GetString("end_time", "")
	description := req.GetString("description", "")

	var attendees []string
	if raw := req.GetString("attendees", ""); raw != "" {
		for _, frag := range splitCSV(raw) {
			email, ok := s.svc.Contacts.Resolve(frag)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("no contact matching %q", frag)), nil
			}
			attendees = append(attendees, email)
		}
	}

	msg, err := s.svc.Calendar.CreateEvent(ctx, title, startTime, endTime, attendees, description)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create event: %v", err)), nil
	}

	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleListEmails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	maxResults := int64(req.GetFloat("max_results", 5))
	if maxResults <= 0 {
		maxResults = 5
	}

	refs, err := s.svc.Gmail.ListMessages(ctx, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list emails: %v", err)), nil
	}
	if len(refs) == 0 {
		return mcp.NewToolResultText("No messages found."), nil
	}

	out := ""
	for _, ref := range refs {
		sum, err := s.svc.Gmail.FetchSummary(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to fetch message: %v", err)), nil
		}
		out += gmail.FormatSummary(sum) + "\n"
	}

	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleSendEmail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	to := req.GetString("to", "")
	template := req.GetString("template", "")
	if to == "" || template == "" {
		return mcp.NewToolResultError("to and template are required"), nil
	}

	email, ok := s.svc.Contacts.Resolve(to)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no contact matching %q", to)), nil
	}

	fields := map[string]string{}
	if raw := req.GetString("fields", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("fields must be a JSON object: %v", err)), nil
		}
	}

	msg, err := s.svc.Gmail.Send(ctx, email, template, fields)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to send email: %v", err)), nil
	}

	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleFetchNews(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := news.Query{
		Category: req.GetString("category", ""),
		Search:   req.GetString("search", ""),
	}

	articles, err := s.svc.News.Fetch(ctx, q)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch news: %v", err)), nil
	}

	return mcp.NewToolResultText(news.FormatArticles(articles)), nil
}

func splitCSV(raw string) []string {
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
