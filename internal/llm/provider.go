package llm

import "context"

// Provider defines the interface for text-generation backends.
// Implementations include the Gemini API and DeepSeek API.
type Provider interface {
	// Complete sends a single prompt and returns the model's raw text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (e.g., "gemini", "deepseek").
	Name() string

	// Close releases any resources held by the provider.
	Close() error
}
