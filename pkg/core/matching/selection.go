package matching

import (
	"errors"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// ErrNotMatching is returned by SelectMatching for bands outside the gig's matching set
var ErrNotMatching = errors.New("band is not among the gig's matching bands")

// IsSelected reports whether the band ID is in the gig's selection
func IsSelected(gig model.Gig, bandID string) bool {
	return indexOf(gig.SelectedBands, bandID) >= 0
}

// IsMatching reports whether the band ID is in the gig's matching snapshot
func IsMatching(gig model.Gig, bandID string) bool {
	return indexOf(gig.MatchingBands, bandID) >= 0
}

// Select adds band to the gig's selection. Selecting an already selected band
// is a no-op. Membership in MatchingBands is not checked; use SelectMatching
// for that.
func Select(gig model.Gig, band model.Band) model.Gig {
	if IsSelected(gig, band.ID) {
		return gig
	}
	selected := make([]model.Band, 0, len(gig.SelectedBands)+1)
	selected = append(selected, gig.SelectedBands...)
	gig.SelectedBands = append(selected, band)
	return gig
}

// SelectMatching is Select restricted to bands in the gig's matching snapshot
func SelectMatching(gig model.Gig, band model.Band) (model.Gig, error) {
	if !IsMatching(gig, band.ID) {
		return gig, ErrNotMatching
	}
	return Select(gig, band), nil
}

// Deselect removes the band with bandID from the gig's selection
func Deselect(gig model.Gig, bandID string) model.Gig {
	i := indexOf(gig.SelectedBands, bandID)
	if i < 0 {
		return gig
	}
	selected := make([]model.Band, 0, len(gig.SelectedBands)-1)
	selected = append(selected, gig.SelectedBands[:i]...)
	gig.SelectedBands = append(selected, gig.SelectedBands[i+1:]...)
	return gig
}

// Toggle deselects band if it is selected, otherwise selects it
func Toggle(gig model.Gig, band model.Band) model.Gig {
	if IsSelected(gig, band.ID) {
		return Deselect(gig, band.ID)
	}
	return Select(gig, band)
}

// Available returns the gig's matching bands that haven't been selected
func Available(gig model.Gig) []model.Band {
	available := make([]model.Band, 0, len(gig.MatchingBands))
	for _, band := range gig.MatchingBands {
		if !IsSelected(gig, band.ID) {
			available = append(available, band)
		}
	}
	return available
}

func indexOf(bands []model.Band, id string) int {
	for i, b := range bands {
		if b.ID == id {
			return i
		}
	}
	return -1
}
