package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/codhiambo/sonia/internal/config"
)

// GeminiProvider implements Provider for the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	config config.GeminiConfig
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg config.GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
	}, nil
}

// Complete sends the prompt with the fixed sampling configuration and
// returns the model text unmodified.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(p.config.Temperature)),
		TopP:            genai.Ptr(float32(p.config.TopP)),
		TopK:            genai.Ptr(float32(p.config.TopK)),
		MaxOutputTokens: int32(p.config.MaxTokens),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.config.Model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("Gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("Gemini returned an empty response")
	}
	return text, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Close releases resources (no-op for Gemini).
func (p *GeminiProvider) Close() error {
	return nil
}
