package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Provider type constants (duplicated from llm package to avoid import cycle)
const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
)

type Config struct {
	Provider  string          `koanf:"provider"`
	Server    ServerConfig    `koanf:"server"`
	Gemini    GeminiConfig    `koanf:"gemini"`
	DeepSeek  DeepSeekConfig  `koanf:"deepseek"`
	News      NewsConfig      `koanf:"news"`
	Google    GoogleConfig    `koanf:"google"`
	Reminders RemindersConfig `koanf:"reminders"`
	Contacts  []ContactSeed   `koanf:"contacts"`
	Log       LogConfig       `koanf:"log"`
	UI        UIConfig        `koanf:"ui"`
}

type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

type GeminiConfig struct {
	APIKey      string  `koanf:"api_key"`
	Model       string  `koanf:"model"`
	Temperature float64 `koanf:"temperature"`
	TopP        float64 `koanf:"top_p"`
	TopK        int     `koanf:"top_k"`
	MaxTokens   int     `koanf:"max_tokens"`
}

type DeepSeekConfig struct {
	APIKey      string  `koanf:"api_key"`
	BaseURL     string  `koanf:"base_url"`
	Timeout     int     `koanf:"timeout"`
	Model       string  `koanf:"model"`
	Temperature float64 `koanf:"temperature"`
	MaxTokens   int     `koanf:"max_tokens"`
}

type NewsConfig struct {
	APIKey   string `koanf:"api_key"`
	BaseURL  string `koanf:"base_url"`
	PageSize int    `koanf:"page_size"`
}

// GoogleConfig locates the OAuth client secret and the cached token file
// used for the Calendar and Gmail services.
type GoogleConfig struct {
	CredentialsFile string `koanf:"credentials_file"`
	TokenFile       string `koanf:"token_file"`
}

type RemindersConfig struct {
	DBPath string `koanf:"db_path"`
}

// ContactSeed is one entry of the startup contact list.
type ContactSeed struct {
	Name  string `koanf:"name"`
	Email string `koanf:"email"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type UIConfig struct {
	ColoredOutput bool `koanf:"colored_output"`
}

// Load builds the configuration by layering defaults, an optional YAML
// file, and environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// SONIA_SERVER_PORT=8080 -> server.port etc.
	if err := k.Load(env.Provider("SONIA_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SONIA_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// Well-known credential variables keep their historical names.
	if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		k.Set("gemini.api_key", apiKey)
	}
	if newsKey := os.Getenv("NEWS_API_KEY"); newsKey != "" {
		k.Set("news.api_key", newsKey)
	}
	if dsKey := os.Getenv("DEEPSEEK_API_KEY"); dsKey != "" {
		k.Set("deepseek.api_key", dsKey)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Reminders.DBPath = expandPath(cfg.Reminders.DBPath)
	cfg.Google.CredentialsFile = expandPath(cfg.Google.CredentialsFile)
	cfg.Google.TokenFile = expandPath(cfg.Google.TokenFile)

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("Gemini API key is required (set GOOGLE_API_KEY or add to config file)")
		}
	case ProviderDeepSeek:
		if c.DeepSeek.APIKey == "" {
			return fmt.Errorf("DeepSeek API key is required (set DEEPSEEK_API_KEY or add to config file)")
		}
	default:
		return fmt.Errorf("unknown provider: %s (supported: %s, %s)",
			c.Provider, ProviderGemini, ProviderDeepSeek)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}

	if c.Reminders.DBPath == "" {
		return fmt.Errorf("reminder database path is required")
	}

	if c.News.PageSize <= 0 {
		return fmt.Errorf("news page_size must be positive")
	}

	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
