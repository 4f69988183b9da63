package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "session_key: secret\n"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Listen)
	assert.Equal(t, "secret", cfg.SessionKey)
	assert.Equal(t, 172800, cfg.SessionMaxAge)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "cookbook", cfg.Mongo.Database)
	assert.Equal(t, 10, cfg.ConnectTimeoutSeconds())
	assert.Equal(t, IndexPolicyStartup, cfg.SearchIndexPolicy())
	require.NotNil(t, cfg.Webhook)
	assert.False(t, cfg.Webhook.Enabled)
	assert.Equal(t, [][]string{{"git", "pull"}}, cfg.Webhook.Commands)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:8080
session_key: abc
mongo:
  uri: "  mongodb://db:27017  "
  database: recipes
  connect_timeout: 3
search:
  index_policy: REQUEST
gravatar:
  enabled: true
  default_image: Identicon
  rating: PG
  size: 120
webhook:
  enabled: true
  work_dir: /srv/app
  commands:
    - ["git", "pull"]
    - ["chmod", "a+x", "run.sh"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "recipes", cfg.Mongo.Database)
	assert.Equal(t, 3, cfg.ConnectTimeoutSeconds())
	assert.Equal(t, IndexPolicyRequest, cfg.SearchIndexPolicy())
	assert.Equal(t, "identicon", cfg.Gravatar.DefaultImage)
	assert.Equal(t, "pg", cfg.Gravatar.Rating)
	assert.Equal(t, "/srv/app", cfg.Webhook.WorkDir)
	assert.Len(t, cfg.Webhook.Commands, 2)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COOKBOOK_MONGO_DATABASE", "from_env")
	t.Setenv("COOKBOOK_LISTEN", ":9999")

	cfg, err := Load(writeConfig(t, "session_key: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Mongo.Database)
	assert.Equal(t, ":9999", cfg.Listen)
}

func TestLoad_WebhookCommandsFromEnv(t *testing.T) {
	t.Setenv("COOKBOOK_WEBHOOK_ENABLED", "true")
	t.Setenv("COOKBOOK_WEBHOOK_COMMANDS", "git fetch origin; git reset --hard origin/main ;")

	cfg, err := Load(writeConfig(t, "session_key: x\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Webhook.Enabled)
	assert.Equal(t, [][]string{
		{"git", "fetch", "origin"},
		{"git", "reset", "--hard", "origin/main"},
	}, cfg.Webhook.Commands)
}

func TestParseCommandList(t *testing.T) {
	assert.Equal(t, [][]string{{"git", "pull"}}, parseCommandList("  git   pull "))
	assert.Empty(t, parseCommandList(" ; ;"))
}

func TestLoad_GeneratesSessionKey(t *testing.T) {
	cfg, err := Load(writeConfig(t, "listen: :5000\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.SessionKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown index policy",
			content: "search:\n  index_policy: never\n",
		},
		{
			name:    "empty database",
			content: "mongo:\n  database: \"\"\n",
		},
		{
			name:    "bad gravatar size",
			content: "gravatar:\n  enabled: true\n  size: 5000\n",
		},
		{
			name:    "bad gravatar rating",
			content: "gravatar:\n  enabled: true\n  rating: nc17\n",
		},
		{
			name:    "webhook without commands",
			content: "webhook:\n  enabled: true\n  commands: []\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
