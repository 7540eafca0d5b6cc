package repositories

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
)

// Open creates the repository named by the scheme of connStr.
// Migrations are read from the sqlite or postgres subdirectory of migrationsDir.
func Open(ctx context.Context, connStr string, migrationsDir string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "memory":
		return NewInMemoryRepository(), nil
	case "sqlite":
		// sqlite://pong.db is relative, sqlite:///var/lib/pong.db is absolute
		path := u.Host + u.Path
		if path == "" {
			return nil, fmt.Errorf("missing sqlite database path")
		}
		return NewSQLiteRepository(ctx, path, filepath.Join(migrationsDir, "sqlite"))
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, u.String(), filepath.Join(migrationsDir, "postgres"))
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
