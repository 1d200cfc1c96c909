package matching

import (
	"sort"

	"github.com/jakechorley/gig-matcher/pkg/core/genres"
	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// ComputeMatches returns the bands eligible to play a gig, in roster order.
// A band is eligible when:
//   - at least one of its genres is in desiredGenres (exact match)
//   - its city name equals desiredCity
//   - its country equals desiredCountry
func ComputeMatches(bands []model.Band, desiredGenres []string, desiredCity string, desiredCountry model.Country) []model.Band {
	wanted := make(map[string]bool, len(desiredGenres))
	for _, g := range desiredGenres {
		wanted[g] = true
	}

	matches := make([]model.Band, 0)
	for _, band := range bands {
		if band.Country != desiredCountry || band.CityName() != desiredCity {
			continue
		}
		if !anyGenre(band, wanted) {
			continue
		}
		matches = append(matches, band)
	}

	return matches
}

// AvailableCities returns the city names worth offering on the gig form: the
// cities of bands sharing a genre with genres (any band when genres is empty)
// in country (any country when blank). Sorted, distinct and non-blank.
func AvailableCities(bands []model.Band, desiredGenres []string, country model.Country) []string {
	wanted := make(map[string]bool, len(desiredGenres))
	for _, g := range desiredGenres {
		wanted[g] = true
	}

	seen := make(map[string]bool)
	cities := make([]string, 0)
	for _, band := range bands {
		if len(wanted) > 0 && !anyGenre(band, wanted) {
			continue
		}
		if country != "" && band.Country != country {
			continue
		}
		city := band.CityName()
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		cities = append(cities, city)
	}
	sort.Strings(cities)

	return cities
}

// AvailableGenres returns the roster's genres belonging to category, less the
// ones already chosen
func AvailableGenres(bands []model.Band, category string, chosen []string) []string {
	seen := make(map[string]bool)
	all := make([]string, 0)
	for _, band := range bands {
		for _, g := range band.Genres {
			if !seen[g] {
				seen[g] = true
				all = append(all, g)
			}
		}
	}

	exclude := make(map[string]bool, len(chosen))
	for _, g := range chosen {
		exclude[g] = true
	}

	result := make([]string, 0)
	for _, g := range genres.GenresForCategory(all, category) {
		if !exclude[g] {
			result = append(result, g)
		}
	}
	return result
}

func anyGenre(band model.Band, wanted map[string]bool) bool {
	for _, g := range band.Genres {
		if wanted[g] {
			return true
		}
	}
	return false
}
