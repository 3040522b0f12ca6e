package gmail

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderTemplate(t *testing.T) {
	subject, body, err := RenderTemplate("meeting_request", map[string]string{
		"title":         "Q2 planning",
		"attendee_name": "Sarah",
		"time":          "Tuesday 10:00",
		"location":      "Room 4",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if subject != "Meeting Request: Q2 planning" {
		t.Errorf("unexpected subject: %q", subject)
	}
	for _, want := range []string{"Hi Sarah,", "Q2 planning", "Tuesday 10:00", "Room 4", "Chrispine Odhiambo"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q:\n%s", want, body)
		}
	}
}

func TestRenderTemplateMissingField(t *testing.T) {
	_, _, err := RenderTemplate("meeting_request", map[string]string{
		"title":         "Q2 planning",
		"attendee_name": "Sarah",
		"time":          "Tuesday 10:00",
		// location deliberately omitted
	})
	if err == nil {
		t.Fatal("expected error for missing placeholder")
	}
	var terr *TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TemplateError, got %T: %v", err, err)
	}
	if terr.Placeholder != "location" {
		t.Errorf("expected missing placeholder 'location', got %q", terr.Placeholder)
	}
}

func TestRenderTemplateUnknown(t *testing.T) {
	if _, _, err := RenderTemplate("farewell", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(Summary{Subject: "Hello", Sender: "Sarah <sarah@example.com>"})
	if out != "Hello\n   Sarah <sarah@example.com>\n" {
		t.Errorf("unexpected summary format: %q", out)
	}
}
