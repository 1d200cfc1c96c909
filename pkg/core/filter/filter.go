package filter

import (
	"github.com/jakechorley/gig-matcher/pkg/core/genres"
	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// Set is a set of selected facet values
type Set map[string]struct{}

// NewSet builds a Set from values, ignoring duplicates
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// BandFilters holds the selected values for each facet of the band browser.
// An empty facet places no restriction on bands.
type BandFilters struct {
	Countries       Set
	Cities          Set
	Genres          Set
	GenreCategories Set
	Statuses        Set
}

// HasActiveFilters returns true if any facet has a selection
func (f BandFilters) HasActiveFilters() bool {
	return f.ActiveFilterCount() > 0
}

// ActiveFilterCount returns the number of selected values across all facets
func (f BandFilters) ActiveFilterCount() int {
	return len(f.Countries) + len(f.Cities) + len(f.Genres) + len(f.GenreCategories) + len(f.Statuses)
}

// WithCountries returns a copy with the country selection replaced. The city
// selection is cleared since the offered cities depend on the countries.
func (f BandFilters) WithCountries(countries ...string) BandFilters {
	f.Countries = NewSet(countries...)
	f.Cities = nil
	return f
}

// WithGenreCategories returns a copy with the category selection replaced. The
// genre selection is cleared since the offered genres depend on the categories.
func (f BandFilters) WithGenreCategories(categories ...string) BandFilters {
	f.GenreCategories = NewSet(categories...)
	f.Genres = nil
	return f
}

// Apply returns the bands that pass every non-empty facet, in their original order.
//
//   - country and status: exact membership
//   - city: any selected city is contained in the band's location, ignoring case
//   - genre: any of the band's genres is selected
//   - genre category: any of the band's genres categorises into a selected category
//
// Apply does not enforce the dependency between countries and cities or between
// categories and genres; those only narrow the options offered.
func Apply(bands []model.Band, filters BandFilters) []model.Band {
	result := make([]model.Band, 0, len(bands))
	for _, band := range bands {
		if Matches(band, filters) {
			result = append(result, band)
		}
	}
	return result
}

// Matches reports whether a single band passes the filters
func Matches(band model.Band, filters BandFilters) bool {
	return matchesCountry(band, filters.Countries) &&
		matchesCity(band, filters.Cities) &&
		matchesGenre(band, filters.Genres) &&
		matchesCategory(band, filters.GenreCategories) &&
		matchesStatus(band, filters.Statuses)
}

func matchesCountry(band model.Band, countries Set) bool {
	return len(countries) == 0 || countries.Has(string(band.Country))
}

func matchesCity(band model.Band, cities Set) bool {
	if len(cities) == 0 {
		return true
	}
	for city := range cities {
		if genres.ContainsFold(band.Location, city) {
			return true
		}
	}
	return false
}

func matchesGenre(band model.Band, selected Set) bool {
	if len(selected) == 0 {
		return true
	}
	for _, g := range band.Genres {
		if selected.Has(g) {
			return true
		}
	}
	return false
}

func matchesCategory(band model.Band, categories Set) bool {
	if len(categories) == 0 {
		return true
	}
	for _, g := range band.Genres {
		if categories.Has(genres.Categorize(g)) {
			return true
		}
	}
	return false
}

func matchesStatus(band model.Band, statuses Set) bool {
	return len(statuses) == 0 || statuses.Has(band.Status)
}
