package ingest

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanGenreField(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected string
	}{
		{name: "blank", field: "   ", expected: ""},
		{name: "single", field: "Doom Metal", expected: "Doom Metal"},
		{name: "mixed separators", field: "Thrash Metal; Crossover, Punk/Hardcore", expected: "Crossover/Hardcore/Punk/Thrash Metal"},
		{name: "parenthetical notes", field: "Death Metal (early)/Melodic Death Metal (later)", expected: "Death Metal/Melodic Death Metal"},
		{name: "duplicates", field: "Black Metal/Black Metal (mid)/ Black Metal ", expected: "Black Metal"},
		{name: "note only", field: "(early)/Sludge Metal", expected: "Sludge Metal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanGenreField(tt.field))
		})
	}
}

func TestStandardizeGenre(t *testing.T) {
	tests := []struct {
		genre    string
		expected string
	}{
		{genre: "Atmospheric Black", expected: "Atmospheric Black Metal"},
		{genre: "Black", expected: "Black Metal"},
		{genre: " Technical ", expected: "Technical Death Metal"},
		{genre: "Post Rock", expected: "Post-Rock"},
		{genre: "Crust", expected: "Crust Punk"},
		{genre: "Ambient", expected: "Ambient"},
		{genre: "Black Metal", expected: "Black Metal"},
		{genre: "black", expected: "black"},
	}

	for _, tt := range tests {
		t.Run(tt.genre, func(t *testing.T) {
			assert.Equal(t, tt.expected, StandardizeGenre(tt.genre))
		})
	}
}

func TestStandardizeGenreField(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected string
	}{
		{name: "keeps order", field: "Melodic Death/Doom", expected: "Melodic Death Metal/Doom Metal"},
		{name: "merges onto existing", field: "Black/Black Metal", expected: "Black Metal"},
		{name: "unknown untouched", field: "Synthwave/Indie", expected: "Synthwave/Indie Rock"},
		{name: "blank", field: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StandardizeGenreField(tt.field))
		})
	}
}

func TestCleanBands(t *testing.T) {
	input := "name,url,genre,location,status\n" +
		"Grave Lines,,\"Atmospheric Black (early), Doom\",\"Glasgow, Scotland\",Active\n" +
		"Iron Tide,,Heavy Metal,\"Cardiff, Wales\",\n" +
		"Broken,\"https://x,Rock,Leeds, England\n" +
		"Short,row\n"

	var out bytes.Buffer
	result, err := CleanBands(strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Rows)
	assert.Equal(t, 1, result.Changed)
	assert.Equal(t, map[string]string{
		"Atmospheric Black (early), Doom": "Atmospheric Black Metal/Doom Metal",
	}, result.Changes)

	expected := "name,url,genre,location,status\n" +
		"Grave Lines,,Atmospheric Black Metal/Doom Metal,\"Glasgow, Scotland\",Active\n" +
		"Iron Tide,,Heavy Metal,\"Cardiff, Wales\",\n" +
		"Broken,\"https://x,Rock,Leeds, England\"\n" +
		"Short,row\n"
	assert.Equal(t, expected, out.String())

	bands, err := ParseBands(&out)
	require.NoError(t, err)
	require.Len(t, bands, 2)
	assert.Equal(t, []string{"Atmospheric Black Metal", "Doom Metal"}, bands[0].Genres)
}

func TestCleanBands_GenreColumnByHeader(t *testing.T) {
	input := "genre,name\n" +
		"Stoner/Grind,Fuzz Lords\n"

	var out bytes.Buffer
	_, err := CleanBands(strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, "genre,name\nGrindcore/Stoner Metal,Fuzz Lords\n", out.String())
}

func TestCleanBands_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	result, err := CleanBands(strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Zero(t, result.Rows)
	assert.Empty(t, out.String())
}

func TestCleanBands_ReadErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader(header), iotest.ErrReader(boom))

	var out bytes.Buffer
	_, err := CleanBands(r, &out)

	assert.ErrorIs(t, err, boom)
}
