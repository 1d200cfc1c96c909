package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jakechorley/gig-matcher/pkg/core/ingest"
	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

var validate = validator.New()

// BandStore defines the catalog operations needed for roster changes
type BandStore interface {
	Bands() []model.Band
	AddBand(band model.Band) model.Band
	ImportBands(bands []model.Band) []model.Band
}

// BandInput holds the fields a user supplies when adding a band by hand
type BandInput struct {
	Name     string
	Genres   []string
	Location string
	// Country is derived from Location when blank
	Country model.Country
	Status  string
	URL     string
	Contact string
	Bio     string
}

// LoadBands reads the roster from the CSV at path. Any failure, including a
// blank path, is logged and the built-in sample roster is returned instead.
func LoadBands(ctx context.Context, path string, logger *zap.Logger) []model.Band {
	if path == "" {
		logger.Info("No bands CSV configured, using sample bands")
		return ingest.SampleBands()
	}

	if err := ctx.Err(); err != nil {
		logger.Warn("Band loading cancelled, using sample bands", zap.Error(err))
		return ingest.SampleBands()
	}

	logger.Debug("Loading bands", zap.String("path", path))
	bands, err := ingest.LoadFile(path)
	if err != nil {
		logger.Warn("Failed to load bands, using sample bands",
			zap.String("path", path),
			zap.Error(err))
		return ingest.SampleBands()
	}

	logger.Info("Loaded bands", zap.String("path", path), zap.Int("count", len(bands)))
	return bands
}

// ImportBands parses the CSV at path and merges it into the roster. Unlike
// LoadBands, a failure is returned to the caller.
func ImportBands(ctx context.Context, store BandStore, path string, logger *zap.Logger) ([]model.Band, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bands, err := ingest.LoadFile(path)
	if err != nil {
		return nil, err
	}

	added := store.ImportBands(bands)
	logger.Info("Imported bands", zap.String("path", path), zap.Int("count", len(added)))
	return added, nil
}

// CleanBandsFile rewrites the genre column of the bands CSV at inPath into a
// new file at outPath. The output is written to a temporary file first and
// only renamed into place once the whole roster has been cleaned.
func CleanBandsFile(ctx context.Context, inPath, outPath string, logger *zap.Logger) (ingest.CleanResult, error) {
	if err := ctx.Err(); err != nil {
		return ingest.CleanResult{}, err
	}
	if filepath.Clean(inPath) == filepath.Clean(outPath) {
		return ingest.CleanResult{}, fmt.Errorf("output path must differ from input path %s", inPath)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return ingest.CleanResult{}, fmt.Errorf("failed to open bands csv: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outPath), filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return ingest.CleanResult{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	result, err := ingest.CleanBands(in, tmp)
	if err != nil {
		tmp.Close()
		return ingest.CleanResult{}, err
	}
	if err := tmp.Close(); err != nil {
		return ingest.CleanResult{}, fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return ingest.CleanResult{}, fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info("Cleaned bands csv",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Int("rows", result.Rows),
		zap.Int("changed", result.Changed))
	for original, cleaned := range result.Changes {
		logger.Debug("Genre standardized", zap.String("from", original), zap.String("to", cleaned))
	}

	return result, nil
}

// CreateBand validates input and adds it to the roster with a fresh ID
func CreateBand(store BandStore, input BandInput, logger *zap.Logger) (model.Band, error) {
	band := model.Band{
		Name:     strings.TrimSpace(input.Name),
		Genres:   cleanGenres(input.Genres),
		Location: strings.TrimSpace(input.Location),
		Country:  input.Country,
		Status:   strings.TrimSpace(input.Status),
		URL:      strings.TrimSpace(input.URL),
		Contact:  strings.TrimSpace(input.Contact),
		Bio:      strings.TrimSpace(input.Bio),
	}
	if band.Status == "" {
		band.Status = model.DefaultStatus
	}
	if band.Country == "" {
		band.Country = ingest.DeriveCountry(band.Location)
	}

	if err := validate.Struct(band); err != nil {
		return model.Band{}, fmt.Errorf("invalid band: %w", err)
	}
	if !band.Country.IsValid() {
		return model.Band{}, fmt.Errorf("invalid band: unknown country %q", band.Country)
	}

	band = store.AddBand(band)
	logger.Info("Band created", zap.String("id", band.ID), zap.String("name", band.Name))
	return band, nil
}

// cleanGenres trims each genre and drops blanks
func cleanGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
