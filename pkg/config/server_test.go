package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_defaults(t *testing.T) {
	for _, key := range []string{"PONG_DATABASE_URL", "PONG_MIGRATIONS_DIR", "PONG_API_TLS_CERT_FILE", "PONG_API_TLS_KEY_FILE"} {
		// restored after the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "memory://", cfg.DatabaseURL)
	assert.Equal(t, "./migrations", cfg.MigrationsDir)
	assert.False(t, cfg.TLSEnabled())
}

func TestLoadServerConfig_overrides(t *testing.T) {
	t.Setenv("PONG_DATABASE_URL", "sqlite://pong.db")
	t.Setenv("PONG_MIGRATIONS_DIR", "/srv/pong/migrations")
	t.Setenv("PONG_API_TLS_CERT_FILE", "cert.pem")
	t.Setenv("PONG_API_TLS_KEY_FILE", "key.pem")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, &ServerConfig{
		DatabaseURL:   "sqlite://pong.db",
		MigrationsDir: "/srv/pong/migrations",
		TLSCertFile:   "cert.pem",
		TLSKeyFile:    "key.pem",
	}, cfg)
	assert.True(t, cfg.TLSEnabled())
}

func TestServerConfig_TLSEnabledNeedsBothFiles(t *testing.T) {
	cfg := &ServerConfig{TLSCertFile: "cert.pem"}
	assert.False(t, cfg.TLSEnabled())
}
