package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// GigRepository stores the whole gig collection as one JSON array under a
// single key. Every save overwrites the previous collection.
type GigRepository struct {
	kv  KeyValueStore
	key string
}

func NewGigRepository(kv KeyValueStore, key string) *GigRepository {
	return &GigRepository{kv: kv, key: key}
}

// SaveGigs serializes and writes the full gig list
func (r *GigRepository) SaveGigs(ctx context.Context, gigs []model.Gig) error {
	if gigs == nil {
		gigs = []model.Gig{}
	}
	data, err := json.Marshal(gigs)
	if err != nil {
		return fmt.Errorf("failed to encode gigs: %w", err)
	}
	if err := r.kv.Put(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("failed to save gigs: %w", err)
	}
	return nil
}

// LoadGigs reads the saved gig list. A missing key is an empty list.
func (r *GigRepository) LoadGigs(ctx context.Context) ([]model.Gig, error) {
	value, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load gigs: %w", err)
	}
	if !ok {
		return []model.Gig{}, nil
	}

	var gigs []model.Gig
	if err := json.Unmarshal([]byte(value), &gigs); err != nil {
		return nil, fmt.Errorf("failed to decode gigs: %w", err)
	}
	if gigs == nil {
		gigs = []model.Gig{}
	}
	return gigs, nil
}

// ClearGigs removes the saved gig list
func (r *GigRepository) ClearGigs(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear gigs: %w", err)
	}
	return nil
}
