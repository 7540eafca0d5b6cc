package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig is the stats server configuration read from the environment.
type ServerConfig struct {
	// DatabaseURL selects the repository: memory://, sqlite://<path> or postgresql://...
	DatabaseURL   string `env:"PONG_DATABASE_URL" envDefault:"memory://"`
	MigrationsDir string `env:"PONG_MIGRATIONS_DIR" envDefault:"./migrations"`
	TLSCertFile   string `env:"PONG_API_TLS_CERT_FILE"`
	TLSKeyFile    string `env:"PONG_API_TLS_KEY_FILE"`
}

// TLSEnabled reports whether both TLS files are set.
func (c *ServerConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %v", err)
	}
	return cfg, nil
}
