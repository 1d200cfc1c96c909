package db

import (
	"context"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// KeyValueStore is the persistence primitive every backend provides.
// The file, SQLite and PostgreSQL stores all implement this interface.
type KeyValueStore interface {
	// Get returns the value for key, and false when the key is absent
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// GigStore defines the operations for persisting the gig collection
type GigStore interface {
	SaveGigs(ctx context.Context, gigs []model.Gig) error
	LoadGigs(ctx context.Context) ([]model.Gig, error)
	ClearGigs(ctx context.Context) error
}
