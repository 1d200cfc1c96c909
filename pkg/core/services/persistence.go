package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
	"github.com/jakechorley/gig-matcher/pkg/db"
)

// Publisher receives the results of Bootstrap
type Publisher interface {
	ReplaceBands(bands []model.Band)
	ReplaceGigs(gigs []model.Gig)
}

// SaveGigs writes the gig list to the store. Failures are logged and not
// returned; the in-memory list stays authoritative.
func SaveGigs(ctx context.Context, store db.GigStore, gigs []model.Gig, logger *zap.Logger) {
	if err := store.SaveGigs(ctx, gigs); err != nil {
		logger.Warn("Failed to save gigs", zap.Int("count", len(gigs)), zap.Error(err))
		return
	}
	logger.Debug("Saved gigs", zap.Int("count", len(gigs)))
}

// LoadGigs reads the saved gig list. Any failure is logged and treated as
// no saved gigs.
func LoadGigs(ctx context.Context, store db.GigStore, logger *zap.Logger) []model.Gig {
	gigs, err := store.LoadGigs(ctx)
	if err != nil {
		logger.Warn("Failed to load saved gigs, starting empty", zap.Error(err))
		return []model.Gig{}
	}
	logger.Debug("Loaded saved gigs", zap.Int("count", len(gigs)))
	return gigs
}

// Bootstrap loads the roster and the saved gigs concurrently, then publishes
// both into the catalog. Neither load can fail; the only error is a
// cancelled context.
func Bootstrap(ctx context.Context, pub Publisher, bandsPath string, store db.GigStore, logger *zap.Logger) error {
	var bands []model.Band
	var gigs []model.Gig

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bands = LoadBands(gctx, bandsPath, logger)
		return nil
	})
	g.Go(func() error {
		gigs = LoadGigs(gctx, store, logger)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pub.ReplaceBands(bands)
	pub.ReplaceGigs(gigs)

	logger.Info("Catalog ready", zap.Int("bands", len(bands)), zap.Int("gigs", len(gigs)))
	return nil
}
