package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// mockGigStore implements db.GigStore
type mockGigStore struct {
	gigs    []model.Gig
	saved   [][]model.Gig
	loadErr error
	saveErr error
}

func (m *mockGigStore) SaveGigs(ctx context.Context, gigs []model.Gig) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, gigs)
	m.gigs = gigs
	return nil
}

func (m *mockGigStore) LoadGigs(ctx context.Context) ([]model.Gig, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.gigs, nil
}

func (m *mockGigStore) ClearGigs(ctx context.Context) error {
	m.gigs = nil
	return nil
}

func testRoster() []model.Band {
	return []model.Band{
		{ID: "1", Name: "Electric Wolves", Genres: []string{"Rock", "Alternative"}, Location: "London, England", Country: model.CountryEngland, Status: "Active"},
		{ID: "2", Name: "Midnight Echoes", Genres: []string{"Indie", "Folk"}, Location: "Bristol, England", Country: model.CountryEngland, Status: "Active"},
		{ID: "3", Name: "Grave Lines", Genres: []string{"Doom Metal"}, Location: "London, England", Country: model.CountryEngland, Status: "Active"},
		{ID: "4", Name: "Neon Nights", Genres: []string{"Synthwave", "Rock"}, Location: "London, England", Country: model.CountryEngland, Status: "Active"},
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bands.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func bandIDs(bands []model.Band) []string {
	out := make([]string, 0, len(bands))
	for _, b := range bands {
		out = append(out, b.ID)
	}
	return out
}
