package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsReminderCron(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, "[llm]\nprovider = \"gemini\"\n"))

	assert.NoError(t, err)
	assert.Equal(t, "0 9 * * *", cfg.Scheduler.ReminderCron)
}

func TestLoadRejectsPromptWithoutPlaceholder(t *testing.T) {
	_, err := Load(writeTempConfig(t, "[prompts]\nclassify = \"pick exactly one tag\"\n"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), MessagePlaceholder)
}

func TestLoadAcceptsPromptWithPlaceholder(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, "[prompts]\nclassify = \"Tag this: {{message}}\"\n"))

	assert.NoError(t, err)
	assert.Equal(t, "Tag this: {{message}}", cfg.Prompts.Classify)
}
