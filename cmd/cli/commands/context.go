package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/gig-matcher/internal/config"
	"github.com/jakechorley/gig-matcher/pkg/core/catalog"
	"github.com/jakechorley/gig-matcher/pkg/core/services"
	"github.com/jakechorley/gig-matcher/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Catalog *catalog.Catalog
	Store   db.KeyValueStore
	Gigs    db.GigStore
	Logger  *zap.Logger
	Ctx     context.Context
}

// saveGigs persists the current gig list. Failures are logged only.
func (app *AppContext) saveGigs() {
	services.SaveGigs(app.Ctx, app.Gigs, app.Catalog.Gigs(), app.Logger)
}
