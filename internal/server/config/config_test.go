package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, "recipe-images", cfg.S3Bucket)
}

func TestParseFlags(t *testing.T) {
	withArgs(t, "-a", ":9090", "-d", "postgres://u:p@h/db", "-s", "c2VjcmV0", "-t", "12")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "postgres://u:p@h/db", cfg.DatabaseDSN)
	assert.Equal(t, "c2VjcmV0", cfg.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.TokenValidityDuration)
}

func TestParseEnv_OverridesFlags(t *testing.T) {
	withArgs(t, "-a", ":9090")
	t.Setenv("ADDRESS", ":7070")
	t.Setenv("JWT_SECRET", "ZW52LXNlY3JldA==")

	cfg := LoadConfig()

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "ZW52LXNlY3JldA==", cfg.JWTSecret)
}

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"endpoint_addr": ":6060",
		"jwt_secret": "anNvbi1zZWNyZXQ=",
		"token_validity_duration": "48h",
		"s3_bucket": "pics"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, ":6060", cfg.EndpointAddr)
	assert.Equal(t, "anNvbi1zZWNyZXQ=", cfg.JWTSecret)
	assert.Equal(t, 48*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, "pics", cfg.S3Bucket)
	// untouched fields keep their defaults
	assert.Equal(t, "us-east-1", cfg.S3Region)
}
