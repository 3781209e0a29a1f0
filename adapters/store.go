package adapters

import (
	"context"
	"fmt"
	"strings"

	"mylogin/adapters/myredis"
	"mylogin/adapters/mysqlite"
	"mylogin/interfaces"
)

const sqliteScheme = "sqlite://"

// StoreConfig names the backing store and the database/collection inside it.
type StoreConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// NewCredentialStore picks the backend by URI scheme: redis:// and rediss:// use Redis,
// sqlite://<path> uses a SQLite file.
func NewCredentialStore(ctx context.Context, cfg StoreConfig) (interfaces.CredentialStore, error) {
	switch {
	case strings.HasPrefix(cfg.URI, "redis://"), strings.HasPrefix(cfg.URI, "rediss://"):
		store, err := myredis.NewCredentialStore(cfg.URI, cfg.Database, cfg.Collection)
		if err != nil {
			return nil, err
		}
		return store, nil
	case strings.HasPrefix(cfg.URI, sqliteScheme):
		path := strings.TrimPrefix(cfg.URI, sqliteScheme)
		if path == "" {
			return nil, fmt.Errorf("sqlite store uri %q has no path", cfg.URI)
		}
		store, err := mysqlite.NewCredentialStore(ctx, path, cfg.Database, cfg.Collection)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported store uri %q: scheme must be redis, rediss or sqlite", cfg.URI)
	}
}
