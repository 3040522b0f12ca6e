package assistant

import (
	"context"
	"strings"
)

// route pairs a predicate with its handler. Routes are evaluated in
// priority order and the first match wins.
type route struct {
	name   string
	match  func(message string) bool
	handle func(ctx context.Context, message string) string
}

var (
	reminderKeywords = []string{"reminder", "remind me", "todo", "task"}
	newsKeywords     = []string{"news", "headlines", "trending", "happening"}
)

// newsCategories maps a NewsAPI category to its trigger keywords. Order
// matters: the first category with a keyword hit wins.
var newsCategories = []struct {
	name     string
	keywords []string
}{
	{"technology", []string{"tech", "technology", "ai", "artificial intelligence"}},
	{"business", []string{"business", "economy", "market", "finance"}},
	{"sports", []string{"sports", "football", "basketball", "tennis"}},
	{"health", []string{"health", "medical", "medicine"}},
	{"science", []string{"science", "space", "research"}},
}

func buildRoutes(a *Assistant) []route {
	return []route{
		{
			name:   "reminders",
			match:  keywordMatcher(reminderKeywords),
			handle: a.handleReminders,
		},
		{
			name:   "news",
			match:  keywordMatcher(newsKeywords),
			handle: a.handleNews,
		},
		{
			name:   "chat",
			match:  func(string) bool { return true },
			handle: a.handleChat,
		},
	}
}

func keywordMatcher(keywords []string) func(string) bool {
	return func(message string) bool {
		return containsAny(strings.ToLower(message), keywords)
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// classifyNewsCategory returns the first matching category, or "" for
// unfiltered top headlines.
func classifyNewsCategory(lower string) string {
	for _, cat := range newsCategories {
		if containsAny(lower, cat.keywords) {
			return cat.name
		}
	}
	return ""
}
