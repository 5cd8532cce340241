package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Empty(t, cfg.BackURL)
	assert.Equal(t, 20.0, cfg.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LABSITE_ADDR", "127.0.0.1:9000")
	t.Setenv("LABSITE_OUTPUT_DIR", "dist")
	t.Setenv("LABSITE_BACK_URL", "https://museaiwrite.eduhk.hk/")
	t.Setenv("LABSITE_S3_BUCKET", "cwrite-site")
	t.Setenv("LABSITE_RATE_LIMIT", "0")
	t.Setenv("LABSITE_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, "https://museaiwrite.eduhk.hk/", cfg.BackURL)
	assert.Equal(t, "cwrite-site", cfg.Bucket)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "trace"},
		{name: "negative rate", key: "LABSITE_RATE_LIMIT", value: "-1"},
		{name: "zero shutdown timeout", key: "LABSITE_SHUTDOWN_TIMEOUT", value: "0s"},
		{name: "back url not a uri", key: "LABSITE_BACK_URL", value: "not a uri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestFromEnv_ParseError(t *testing.T) {
	t.Setenv("LABSITE_SHUTDOWN_TIMEOUT", "soon")

	_, err := FromEnv()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
