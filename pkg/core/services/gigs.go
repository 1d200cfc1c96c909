package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/gig-matcher/pkg/core/catalog"
	"github.com/jakechorley/gig-matcher/pkg/core/matching"
	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// GigCatalog defines the catalog operations needed to manage gigs
type GigCatalog interface {
	Bands() []model.Band
	FindBand(id string) (model.Band, bool)
	FindGig(id string) (model.Gig, bool)
	AddGig(gig model.Gig)
	ReplaceGig(gig model.Gig) error
	RemoveGig(id string) error
}

// GigInput holds the promoter-supplied fields of a gig
type GigInput struct {
	Title        string        `validate:"required"`
	PromoterName string        `validate:"required"`
	Genres       []string      `validate:"min=1,dive,required"`
	City         string        `validate:"required"`
	Country      model.Country `validate:"required"`
}

func (in GigInput) normalized() GigInput {
	return GigInput{
		Title:        strings.TrimSpace(in.Title),
		PromoterName: strings.TrimSpace(in.PromoterName),
		Genres:       cleanGenres(in.Genres),
		City:         strings.TrimSpace(in.City),
		Country:      in.Country,
	}
}

func validateGigInput(in GigInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid gig: %w", err)
	}
	if !in.Country.IsValid() {
		return fmt.Errorf("invalid gig: unknown country %q", in.Country)
	}
	return nil
}

// CreateGig validates input, snapshots the bands that currently match it and
// adds the new gig to the catalog
func CreateGig(cat GigCatalog, input GigInput, logger *zap.Logger) (model.Gig, error) {
	input = input.normalized()
	if err := validateGigInput(input); err != nil {
		return model.Gig{}, err
	}

	gig := model.Gig{
		ID:            uuid.New().String(),
		Title:         input.Title,
		PromoterName:  input.PromoterName,
		Genres:        input.Genres,
		City:          input.City,
		Country:       input.Country,
		MatchingBands: matching.ComputeMatches(cat.Bands(), input.Genres, input.City, input.Country),
		SelectedBands: []model.Band{},
	}

	cat.AddGig(gig)

	logger.Info("Gig created",
		zap.String("id", gig.ID),
		zap.String("title", gig.Title),
		zap.Int("matching_bands", len(gig.MatchingBands)))

	return gig, nil
}

// EditGig replaces a gig's details and retakes its matching snapshot.
// Selected bands are kept as long as they are still on the roster.
func EditGig(cat GigCatalog, id string, input GigInput, logger *zap.Logger) (model.Gig, error) {
	existing, ok := cat.FindGig(id)
	if !ok {
		return model.Gig{}, fmt.Errorf("gig %s: %w", id, catalog.ErrNotFound)
	}

	input = input.normalized()
	if err := validateGigInput(input); err != nil {
		return model.Gig{}, err
	}

	selected := make([]model.Band, 0, len(existing.SelectedBands))
	for _, band := range existing.SelectedBands {
		if _, onRoster := cat.FindBand(band.ID); onRoster {
			selected = append(selected, band)
		} else {
			logger.Debug("Dropping selection no longer on the roster",
				zap.String("gig_id", id),
				zap.String("band_id", band.ID))
		}
	}

	gig := model.Gig{
		ID:            existing.ID,
		Title:         input.Title,
		PromoterName:  input.PromoterName,
		Genres:        input.Genres,
		City:          input.City,
		Country:       input.Country,
		MatchingBands: matching.ComputeMatches(cat.Bands(), input.Genres, input.City, input.Country),
		SelectedBands: selected,
	}

	if err := cat.ReplaceGig(gig); err != nil {
		return model.Gig{}, fmt.Errorf("failed to update gig %s: %w", id, err)
	}

	logger.Info("Gig updated",
		zap.String("id", gig.ID),
		zap.Int("matching_bands", len(gig.MatchingBands)),
		zap.Int("selected_bands", len(gig.SelectedBands)))

	return gig, nil
}

// DeleteGig removes a gig from the catalog
func DeleteGig(cat GigCatalog, id string, logger *zap.Logger) error {
	if err := cat.RemoveGig(id); err != nil {
		return fmt.Errorf("gig %s: %w", id, err)
	}
	logger.Info("Gig deleted", zap.String("id", id))
	return nil
}

// ToggleBandSelection selects the band for the gig, or deselects it if it is
// already selected. The band is looked up in the gig's matching snapshot
// first, then on the roster.
func ToggleBandSelection(cat GigCatalog, gigID, bandID string, logger *zap.Logger) (model.Gig, error) {
	gig, ok := cat.FindGig(gigID)
	if !ok {
		return model.Gig{}, fmt.Errorf("gig %s: %w", gigID, catalog.ErrNotFound)
	}

	if matching.IsSelected(gig, bandID) {
		gig = matching.Deselect(gig, bandID)
		logger.Info("Band deselected", zap.String("gig_id", gigID), zap.String("band_id", bandID))
	} else {
		band, found := findBandForGig(cat, gig, bandID)
		if !found {
			return model.Gig{}, fmt.Errorf("band %s: %w", bandID, catalog.ErrNotFound)
		}
		if !matching.IsMatching(gig, bandID) {
			logger.Warn("Selecting band outside the gig's matching bands",
				zap.String("gig_id", gigID),
				zap.String("band_id", bandID))
		}
		gig = matching.Select(gig, band)
		logger.Info("Band selected", zap.String("gig_id", gigID), zap.String("band_id", bandID))
	}

	if err := cat.ReplaceGig(gig); err != nil {
		return model.Gig{}, fmt.Errorf("failed to update gig %s: %w", gigID, err)
	}
	return gig, nil
}

func findBandForGig(cat GigCatalog, gig model.Gig, bandID string) (model.Band, bool) {
	for _, band := range gig.MatchingBands {
		if band.ID == bandID {
			return band, true
		}
	}
	return cat.FindBand(bandID)
}
