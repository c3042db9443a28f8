package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "SERVER_ADDRESS", "ENVIRONMENT", "LOG_LEVEL", "ENABLE_METRICS",
		"ENABLE_CORS", "ALLOWED_ORIGINS", "WRITE_RATE_LIMIT", "ALLOW_SELF_FRIENDSHIP", "MAX_PEOPLE", "MAX_FRIENDS_PER_PERSON",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.DomainConfig().AllowSelfFriendship)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ALLOW_SELF_FRIENDSHIP", "true")
	t.Setenv("MAX_PEOPLE", "42")
	t.Setenv("WRITE_RATE_LIMIT", "120")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 120, cfg.WriteRateLimit)

	domain := cfg.DomainConfig()
	assert.True(t, domain.AllowSelfFriendship)
	assert.Equal(t, 42, domain.MaxPeople)
	assert.Equal(t, 5000, domain.MaxFriendsPerPerson, "production preset is kept")
}

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "socialgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_address: ":7070"
log_level: debug
enable_metrics: false
max_friends_per_person: 3
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, ":7070", cfg.ServerAddress)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over file")
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, 3, cfg.DomainConfig().MaxFriendsPerPerson)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown environment", env: map[string]string{"ENVIRONMENT": "staging"}},
		{name: "missing file", env: map[string]string{"CONFIG_FILE": "/nonexistent/socialgraph.yaml"}},
		{name: "negative limit", env: map[string]string{"MAX_PEOPLE": "-1"}},
		{name: "negative rate limit", env: map[string]string{"WRITE_RATE_LIMIT": "-5"}},
		{name: "unparsable rate limit", env: map[string]string{"WRITE_RATE_LIMIT": "abc"}},
		{name: "unparsable max people", env: map[string]string{"MAX_PEOPLE": "lots"}},
		{name: "wildcard origin in production", env: map[string]string{"ENVIRONMENT": "production", "ALLOWED_ORIGINS": "*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := LoadConfig()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
