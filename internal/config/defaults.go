package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"provider": "gemini",
		"server": map[string]interface{}{
			"host": "0.0.0.0",
			"port": 5000,
		},
		// Sampling constants match the assistant's tuned values; they are
		// deliberate literals, not knobs the handlers vary per request.
		"gemini": map[string]interface{}{
			"api_key":     "",
			"model":       "gemini-2.5-flash-preview-05-20",
			"temperature": 2.0,
			"top_p":       0.95,
			"top_k":       40,
			"max_tokens":  8192,
		},
		"deepseek": map[string]interface{}{
			"api_key":     "",
			"base_url":    "https://api.deepseek.com",
			"timeout":     120,
			"model":       "deepseek-chat",
			"temperature": 1.0,
			"max_tokens":  8192,
		},
		"news": map[string]interface{}{
			"api_key":   "",
			"base_url":  "https://newsapi.org/v2",
			"page_size": 5,
		},
		"google": map[string]interface{}{
			"credentials_file": "credentials.json",
			"token_file":       "token.json",
		},
		"reminders": map[string]interface{}{
			"db_path": "~/.sonia/reminders.db",
		},
		"contacts": []map[string]interface{}{
			{"name": "Sarah Thompson", "email": "sarah@example.com"},
			{"name": "John Doe", "email": "john@example.com"},
		},
		"log": map[string]interface{}{
			"level": "info",
		},
		"ui": map[string]interface{}{
			"colored_output": true,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.sonia/config.yaml"
}
