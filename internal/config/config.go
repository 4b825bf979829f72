package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// MessagePlaceholder marks where the user's message is substituted into
// the text_extraction and classify prompt templates.
const MessagePlaceholder = "{{message}}"

type Prompts struct {
	MediaExtraction string `toml:"media_extraction"`
	TextExtraction  string `toml:"text_extraction"`
	Classify        string `toml:"classify"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type WhatsAppConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
	AdminPhone string `toml:"admin_phone"`
}

type SchedulerConfig struct {
	ReminderCron string `toml:"reminder_cron"`
}

type Config struct {
	LLM       LLMConfig       `toml:"llm"`
	Memgraph  MemgraphConfig  `toml:"memgraph"`
	WhatsApp  WhatsAppConfig  `toml:"whatsapp"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Prompts   Prompts         `toml:"prompts"`

	// DashboardURL is appended as the "view all" footer on list replies.
	DashboardURL string `toml:"dashboard_url"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if cfg.Scheduler.ReminderCron == "" {
		cfg.Scheduler.ReminderCron = "0 9 * * *"
	}

	// Custom message-bearing prompts must carry the placeholder, or the
	// user's text would be silently dropped from every model call.
	templated := map[string]string{
		"prompts.text_extraction": cfg.Prompts.TextExtraction,
		"prompts.classify":        cfg.Prompts.Classify,
	}
	for name, p := range templated {
		if p != "" && !strings.Contains(p, MessagePlaceholder) {
			return nil, fmt.Errorf("%s is missing the %s placeholder", name, MessagePlaceholder)
		}
	}

	return &cfg, nil
}
