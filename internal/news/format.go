package news

import (
	"fmt"
	"strings"
)

// FormatArticles renders up to five articles as the numbered list shown to
// the user.
func FormatArticles(articles []Article) string {
	if len(articles) == 0 {
		return "No recent news found on this topic."
	}

	var b strings.Builder
	b.WriteString("Latest News:\n")
	for i, a := range articles {
		if i == 5 {
			break
		}
		title := a.Title
		if title == "" {
			title = "No title"
		}
		source := a.Source.Name
		if source == "" {
			source = "Unknown source"
		}
		description := a.Description
		if description == "" {
			description = "No description available"
		}
		link := a.URL
		if link == "" {
			link = "#"
		}
		fmt.Fprintf(&b, "%d. %s - %s\n   • %s\n   • Read more: %s\n\n",
			i+1, title, source, description, link)
	}
	return b.String()
}
