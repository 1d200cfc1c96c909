package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/gig-matcher/pkg/core/genres"
	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

func TestAvailableOptions_NoSelection(t *testing.T) {
	opts := AvailableOptions(testBands(), BandFilters{})

	assert.Equal(t, []string{"England", "Northern Ireland", "Scotland", "Wales"}, opts.Countries)
	assert.Equal(t, []string{"Belfast", "Glasgow", "London", "New London"}, opts.Cities)
	assert.Equal(t, []string{
		"Alternative", "Atmospheric Black Metal", "Crust Punk", "D-Beat",
		"Doom Metal", "Folk", "Rock", "Sludge Metal", "Synthwave",
	}, opts.Genres)
	assert.Equal(t, []string{"Active", "On hold", "Split-up"}, opts.Statuses)
	assert.Equal(t, genres.CategoryNames(), opts.GenreCategories)
}

func TestAvailableOptions_CountryNarrowsCities(t *testing.T) {
	opts := AvailableOptions(testBands(), BandFilters{}.WithCountries("England", "Scotland"))

	assert.Equal(t, []string{"Glasgow", "London"}, opts.Cities)
	// Countries themselves are not narrowed
	assert.Len(t, opts.Countries, 4)
}

func TestAvailableOptions_CategoryNarrowsGenres(t *testing.T) {
	opts := AvailableOptions(testBands(), BandFilters{}.WithGenreCategories("Metal", "Punk"))

	assert.Equal(t, []string{"Atmospheric Black Metal", "Crust Punk", "D-Beat", "Doom Metal", "Sludge Metal"}, opts.Genres)
}

func TestAvailableOptions_Empty(t *testing.T) {
	opts := AvailableOptions(nil, BandFilters{})

	assert.Empty(t, opts.Countries)
	assert.Empty(t, opts.Cities)
	assert.Empty(t, opts.Genres)
	assert.Empty(t, opts.Statuses)
	assert.NotEmpty(t, opts.GenreCategories)
}

func TestSortByName(t *testing.T) {
	bands := []model.Band{
		{ID: "1", Name: "zebra"},
		{ID: "2", Name: "Alpha"},
		{ID: "3", Name: "beta"},
		{ID: "4", Name: "ALPHA"},
	}

	sorted := SortByName(bands)

	assert.Equal(t, []string{"2", "4", "3", "1"}, ids(sorted))
	// input untouched
	assert.Equal(t, "1", bands[0].ID)
}

func TestGroupByInitial(t *testing.T) {
	bands := []model.Band{
		{ID: "1", Name: "beta"},
		{ID: "2", Name: "Alpha"},
		{ID: "3", Name: "Bravo"},
		{ID: "4", Name: "  "},
		{ID: "5", Name: "élan"},
	}

	letters, groups := GroupByInitial(bands)

	assert.Equal(t, []string{"#", "A", "B", "É"}, letters)
	require.Len(t, groups["B"], 2)
	assert.Equal(t, "1", groups["B"][0].ID)
	assert.Equal(t, "3", groups["B"][1].ID)
	assert.Equal(t, "4", groups["#"][0].ID)
}
