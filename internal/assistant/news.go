package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/codhiambo/sonia/internal/news"
)

// handleNews classifies the category and fetches headlines. Transport
// failures surface as a plain-language error string, passed through to
// the user unchanged rather than wrapped by the formatting step.
func (a *Assistant) handleNews(ctx context.Context, message string) string {
	category := classifyNewsCategory(strings.ToLower(message))

	articles, err := a.news.Fetch(ctx, news.Query{
		Category: category,
		Count:    a.newsPageSize,
	})
	if err != nil {
		a.logger.Warn("news fetch failed", "category", category, "err", err)
		return fmt.Sprintf("News API error: %v", err)
	}

	return news.FormatArticles(articles)
}
