package filter

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jakechorley/gig-matcher/pkg/core/genres"
	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// Options are the facet values offered to the user for a roster and the
// current selection
type Options struct {
	Countries       []string
	Cities          []string
	Genres          []string
	GenreCategories []string
	Statuses        []string
}

// AvailableOptions computes the values to offer for each facet. Cities are
// narrowed to bands in the selected countries and genres to the selected
// categories; Unknown is never offered as a country.
func AvailableOptions(bands []model.Band, filters BandFilters) Options {
	countries := distinct(bands, func(b model.Band) []string {
		if b.Country == model.CountryUnknown {
			return nil
		}
		return []string{string(b.Country)}
	})

	cities := distinct(bands, func(b model.Band) []string {
		if !matchesCountry(b, filters.Countries) || b.CityName() == "" {
			return nil
		}
		return []string{b.CityName()}
	})

	allGenres := distinct(bands, func(b model.Band) []string { return b.Genres })
	offeredGenres := allGenres
	if len(filters.GenreCategories) > 0 {
		seen := make(map[string]bool)
		offeredGenres = make([]string, 0)
		for _, category := range sortedKeys(filters.GenreCategories) {
			for _, g := range genres.GenresForCategory(allGenres, category) {
				if !seen[g] {
					seen[g] = true
					offeredGenres = append(offeredGenres, g)
				}
			}
		}
		sort.Strings(offeredGenres)
	}

	statuses := distinct(bands, func(b model.Band) []string { return []string{b.Status} })

	return Options{
		Countries:       countries,
		Cities:          cities,
		Genres:          offeredGenres,
		GenreCategories: genres.CategoryNames(),
		Statuses:        statuses,
	}
}

// distinct collects the values produced for each band, deduplicated and sorted
func distinct(bands []model.Band, values func(model.Band) []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, b := range bands {
		for _, v := range values(b) {
			if !seen[v] {
				seen[v] = true
				result = append(result, v)
			}
		}
	}
	sort.Strings(result)
	return result
}

func sortedKeys(s Set) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortByName returns a copy of bands ordered by name, ignoring case. Bands
// with equal names keep their relative order.
func SortByName(bands []model.Band) []model.Band {
	caser := cases.Upper(language.Und)
	keys := make(map[string]string, len(bands))
	for _, b := range bands {
		keys[b.Name] = caser.String(b.Name)
	}

	sorted := append([]model.Band(nil), bands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return keys[sorted[i].Name] < keys[sorted[j].Name]
	})
	return sorted
}

// GroupByInitial buckets bands by the upper-cased first letter of their name.
// The letters are returned sorted; bands keep their order within a bucket.
func GroupByInitial(bands []model.Band) (letters []string, groups map[string][]model.Band) {
	groups = make(map[string][]model.Band)
	for _, b := range bands {
		initial := initialOf(b.Name)
		if _, ok := groups[initial]; !ok {
			letters = append(letters, initial)
		}
		groups[initial] = append(groups[initial], b)
	}
	sort.Strings(letters)
	return letters, groups
}

func initialOf(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "#"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
