package llm

import (
	"context"
	"fmt"

	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"

	"github.com/codhiambo/sonia/internal/config"
)

// DeepSeekProvider implements Provider for the DeepSeek API.
type DeepSeekProvider struct {
	client deepseek.Client
	config config.DeepSeekConfig
}

// NewDeepSeekProvider creates a new DeepSeek provider.
func NewDeepSeekProvider(cfg config.DeepSeekConfig) (*DeepSeekProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("DeepSeek API key is required")
	}

	client, err := deepseek.NewClient(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create DeepSeek client: %w", err)
	}

	return &DeepSeekProvider{
		client: client,
		config: cfg,
	}, nil
}

// Complete sends the prompt as a single user message and returns the
// model's reply text.
func (p *DeepSeekProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var temp *float32
	if p.config.Temperature > 0 {
		t := float32(p.config.Temperature)
		temp = &t
	}

	chatReq := &request.ChatCompletionsRequest{
		Model: p.config.Model,
		Messages: []*request.Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   p.config.MaxTokens,
		Temperature: temp,
		Stream:      false,
	}

	resp, err := p.client.CallChatCompletionsChat(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("DeepSeek API request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("DeepSeek returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Name returns the provider name.
func (p *DeepSeekProvider) Name() string {
	return "deepseek"
}

// Close releases resources (no-op for DeepSeek).
func (p *DeepSeekProvider) Close() error {
	return nil
}
