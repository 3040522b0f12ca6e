package gmail

import (
	"fmt"
	"regexp"
)

// Template is a canned email with {placeholder} fields in its subject and
// body.
type Template struct {
	Subject string
	Body    string
}

var templates = map[string]Template{
	"meeting_request": {
		Subject: "Meeting Request: {title}",
		Body: "Hi {attendee_name},\n\n" +
			"I'd like to schedule a meeting about {title}.\n" +
			"Time: {time}\n" +
			"Location: {location}\n\n" +
			"Best regards,\nChrispine Odhiambo",
	},
}

// TemplateError reports a placeholder with no corresponding field.
type TemplateError struct {
	Template    string
	Placeholder string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: missing field for placeholder {%s}", e.Template, e.Placeholder)
}

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// RenderTemplate populates the named template. Every placeholder must have
// a field; a missing one fails with TemplateError.
func RenderTemplate(name string, fields map[string]string) (subject, body string, err error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown template %q", name)
	}

	subject, err = fill(name, tmpl.Subject, fields)
	if err != nil {
		return "", "", err
	}
	body, err = fill(name, tmpl.Body, fields)
	if err != nil {
		return "", "", err
	}
	return subject, body, nil
}

func fill(name, text string, fields map[string]string) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := fields[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return m
		}
		return v
	})
	if missing != "" {
		return "", &TemplateError{Template: name, Placeholder: missing}
	}
	return out, nil
}
