package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/gig-matcher/cmd/cli/commands"
	"github.com/jakechorley/gig-matcher/internal/config"
	"github.com/jakechorley/gig-matcher/pkg/core/catalog"
	"github.com/jakechorley/gig-matcher/pkg/core/services"
	"github.com/jakechorley/gig-matcher/pkg/db"
	"github.com/jakechorley/gig-matcher/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
	app        = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Gig Matcher CLI - Match touring bands to gigs",
		Long:  `A CLI tool for browsing a band roster, creating gigs and picking the bands that play them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				if err := app.Store.Close(); err != nil && app.Logger != nil {
					app.Logger.Warn("Failed to close store", zap.Error(err))
				}
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment name, used to prefix log files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to gig_matcher_config.yaml (searched in . and ~ when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")

	// Band roster
	rootCmd.AddCommand(commands.BandsCmd(app))
	rootCmd.AddCommand(commands.BandCmd(app))
	rootCmd.AddCommand(commands.CreateBandCmd(app))
	rootCmd.AddCommand(commands.ImportBandsCmd(app))
	rootCmd.AddCommand(commands.CleanBandsCmd(app))
	rootCmd.AddCommand(commands.FilterOptionsCmd(app))

	// Genres
	rootCmd.AddCommand(commands.CategoriesCmd(app))
	rootCmd.AddCommand(commands.GenresCmd(app))
	rootCmd.AddCommand(commands.CategorizeCmd(app))

	// Gigs
	rootCmd.AddCommand(commands.CreateGigCmd(app))
	rootCmd.AddCommand(commands.EditGigCmd(app))
	rootCmd.AddCommand(commands.GigsCmd(app))
	rootCmd.AddCommand(commands.GigCmd(app))
	rootCmd.AddCommand(commands.ToggleBandCmd(app))
	rootCmd.AddCommand(commands.DeleteGigCmd(app))
	rootCmd.AddCommand(commands.CitiesCmd(app))
	rootCmd.AddCommand(commands.SaveCmd(app))
	rootCmd.AddCommand(commands.ClearGigsCmd(app))

	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, store and catalog
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Load configuration first so the logger knows where to write
	cfg, cfgSource, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, cfg.LogsDir, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))
	app.Logger.Debug("Configuration loaded",
		zap.String("source", cfgSource),
		zap.String("backend", cfg.Store.Backend),
		zap.String("bands_csv", cfg.BandsCSV))

	// Open the gig store
	app.Logger.Debug("Opening store", zap.String("backend", cfg.Store.Backend))
	app.Store, err = db.Open(app.Ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	app.Gigs = db.NewGigRepository(app.Store, cfg.Store.Key)

	// Load bands and saved gigs
	app.Catalog = catalog.New()
	if err := services.Bootstrap(app.Ctx, app.Catalog, cfg.BandsCSV, app.Gigs, app.Logger); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	return nil
}

// loadConfig reads --config if given, otherwise searches for the config file
// and falls back to defaults when there is none
func loadConfig() (*config.Config, string, error) {
	if configPath != "" {
		cfg, err := config.LoadFromPath(configPath)
		return cfg, configPath, err
	}

	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), "defaults", nil
	}
	return cfg, "search path", err
}
