package ingest

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

const header = "name,url,genre,location,status\n"

func TestParseBands_RoundTrip(t *testing.T) {
	input := header + `"Electric Wolves","https://ew.bandcamp.com","Rock/Alternative","London, England"` + "\n"

	bands, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bands, 1)

	b := bands[0]
	assert.Equal(t, "1", b.ID)
	assert.Equal(t, "Electric Wolves", b.Name)
	assert.Equal(t, "https://ew.bandcamp.com", b.URL)
	assert.Equal(t, []string{"Rock", "Alternative"}, b.Genres)
	assert.Equal(t, "London, England", b.Location)
	assert.Equal(t, model.CountryEngland, b.Country)
	assert.Equal(t, model.DefaultStatus, b.Status)
}

func TestParseBands_QuotedCommaIsOneField(t *testing.T) {
	input := header + `Doomsayer,https://d.example,"Rock, Alternative","Leeds, England"` + "\n"

	bands, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bands, 1)

	assert.Equal(t, []string{"Rock, Alternative"}, bands[0].Genres)
	assert.Equal(t, "Leeds, England", bands[0].Location)
}

func TestParseBands_DoubledQuoteIsLiteral(t *testing.T) {
	input := header + `"The ""Quoted"" Band",,Punk,"Cardiff, Wales"` + "\n"

	bands, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bands, 1)

	assert.Equal(t, `The "Quoted" Band`, bands[0].Name)
	assert.Equal(t, model.CountryWales, bands[0].Country)
}

func TestParseBands_ShortRowsDropped(t *testing.T) {
	input := header +
		"First,,Metal,\"Leeds, England\"\n" +
		"Only,Three,Fields\n" +
		"\n" +
		"Second,,Punk,\"Glasgow, Scotland\"\n"

	bands, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bands, 2)

	assert.Equal(t, "First", bands[0].Name)
	assert.Equal(t, "1", bands[0].ID)
	assert.Equal(t, "Second", bands[1].Name)
	assert.Equal(t, "2", bands[1].ID)
}

func TestParseBands_Status(t *testing.T) {
	input := header +
		"A,,Metal,\"Leeds, England\",Split-up\n" +
		"B,,Metal,\"Leeds, England\",\n" +
		"C,,Metal,\"Leeds, England\",  On hold  \n"

	bands, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bands, 3)

	assert.Equal(t, "Split-up", bands[0].Status)
	assert.Equal(t, model.DefaultStatus, bands[1].Status)
	assert.Equal(t, "On hold", bands[2].Status)
}

func TestParseBands_HeaderAlwaysSkipped(t *testing.T) {
	// The first row looks like data but is still treated as the header
	input := `"Electric Wolves","https://ew.bandcamp.com","Rock/Alternative","London, England"` + "\n"

	bands, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, bands)
}

func TestParseBands_EmptyInput(t *testing.T) {
	bands, err := ParseBands(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, bands)
}

func TestParseBands_IDsScopedToCall(t *testing.T) {
	input := header + "A,,Metal,\"Leeds, England\"\n"

	first, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	second, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestParseBands_ReadErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(
		strings.NewReader(header+"A,,Metal,\"Leeds, England\"\n"),
		iotest.ErrReader(boom),
	)

	bands, err := ParseBands(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, bands)
}

func TestParseBands_UnterminatedQuoteOnlyLosesItsLine(t *testing.T) {
	input := header +
		"Broken,\"https://x,Rock,Leeds, England\n" +
		"Electric Wolves,https://ew.bandcamp.com,Rock/Alternative,\"London, England\"\n" +
		"Iron Tide,,Heavy Metal,\"Cardiff, Wales\"\n"

	bands, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bands, 2)

	assert.Equal(t, "Electric Wolves", bands[0].Name)
	assert.Equal(t, "1", bands[0].ID)
	assert.Equal(t, model.CountryEngland, bands[0].Country)
	assert.Equal(t, "Iron Tide", bands[1].Name)
	assert.Equal(t, "2", bands[1].ID)
}

func TestParseBands_CRLFLineEndings(t *testing.T) {
	input := "name,url,genre,location\r\n" +
		"A,,Metal,\"Leeds, England\"\r\n" +
		"B,,Punk,\"Glasgow, Scotland\"\r\n"

	bands, err := ParseBands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bands, 2)

	assert.Equal(t, "Leeds, England", bands[0].Location)
	assert.Equal(t, model.CountryScotland, bands[1].Country)
}

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Rock/Alternative", []string{"Rock", "Alternative"}},
		{" Doom Metal / Sludge Metal ", []string{"Doom Metal", "Sludge Metal"}},
		{"Rock//Punk/ /", []string{"Rock", "Punk"}},
		{"Rock/Rock", []string{"Rock", "Rock"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitGenres(tt.input))
		})
	}
}

func TestDeriveCountry(t *testing.T) {
	tests := []struct {
		location string
		expected model.Country
	}{
		{"Belfast, Northern Ireland", model.CountryNorthernIreland},
		{"Dublin, Ireland", model.CountryIreland},
		{"London, England", model.CountryEngland},
		{"Glasgow, Scotland", model.CountryScotland},
		{"Swansea, Wales", model.CountryWales},
		{"Paris, France", model.CountryUnknown},
		{"", model.CountryUnknown},
		{"   ", model.CountryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveCountry(tt.location))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bands.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"A,,Metal,\"Leeds, England\"\n"), 0644))

	bands, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Equal(t, "A", bands[0].Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open bands csv")
}

func TestSampleBands(t *testing.T) {
	bands := SampleBands()
	require.NotEmpty(t, bands)

	seen := make(map[string]bool)
	for _, b := range bands {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
		assert.Equal(t, DeriveCountry(b.Location), b.Country)
	}
}
