package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/gig-matcher/internal/config"
	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

func TestOpen_LocalBackends(t *testing.T) {
	tests := []struct {
		backend string
		file    string
	}{
		{backend: config.BackendFile, file: "gigs.json"},
		{backend: config.BackendSQLite, file: "gigs.db"},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := config.StoreConfig{
				Backend: tt.backend,
				Path:    filepath.Join(t.TempDir(), tt.file),
				Key:     config.DefaultStoreKey,
			}

			kv, err := Open(ctx, cfg)
			require.NoError(t, err)
			defer kv.Close()

			repo := NewGigRepository(kv, cfg.Key)
			require.NoError(t, repo.SaveGigs(ctx, []model.Gig{sampleGig()}))

			gigs, err := repo.LoadGigs(ctx)
			require.NoError(t, err)
			require.Len(t, gigs, 1)
			assert.Equal(t, "Friday Night", gigs[0].Title)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Backend: "redis"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}
