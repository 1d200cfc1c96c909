package db

import (
	"context"
	"fmt"

	"github.com/jakechorley/gig-matcher/internal/config"
	"github.com/jakechorley/gig-matcher/pkg/filestore"
	"github.com/jakechorley/gig-matcher/pkg/postgres"
	"github.com/jakechorley/gig-matcher/pkg/sqlite"
)

// Open connects to the backend named in cfg. The caller owns the returned
// store and must Close it.
func Open(ctx context.Context, cfg config.StoreConfig) (KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendFile:
		fs, err := filestore.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case config.BackendSQLite:
		lite, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return lite, nil
	case config.BackendPostgres:
		pg, err := postgres.NewDB(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := pg.RunMigrations(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
