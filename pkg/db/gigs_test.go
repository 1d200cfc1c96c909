package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// mockKV implements KeyValueStore in memory
type mockKV struct {
	data   map[string]string
	getErr error
	putErr error
	closed bool
}

func newMockKV() *mockKV {
	return &mockKV{data: map[string]string{}}
}

func (m *mockKV) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockKV) Put(ctx context.Context, key, value string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKV) Close() error {
	m.closed = true
	return nil
}

func sampleGig() model.Gig {
	band := model.Band{ID: "1", Name: "Electric Wolves", Genres: []string{"Rock"}, Location: "London, England", Country: model.CountryEngland, Status: "Active"}
	return model.Gig{
		ID:            "g1",
		Title:         "Friday Night",
		PromoterName:  "Sam",
		Genres:        []string{"Rock"},
		City:          "London",
		Country:       model.CountryEngland,
		MatchingBands: []model.Band{band},
		SelectedBands: []model.Band{band},
	}
}

func TestGigRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	repo := NewGigRepository(kv, "saved_gigs")

	require.NoError(t, repo.SaveGigs(ctx, []model.Gig{sampleGig()}))
	assert.Contains(t, kv.data["saved_gigs"], `"promoterName":"Sam"`)
	assert.Contains(t, kv.data["saved_gigs"], `"selectedBands"`)

	gigs, err := repo.LoadGigs(ctx)
	require.NoError(t, err)
	require.Len(t, gigs, 1)
	assert.Equal(t, sampleGig(), gigs[0])
}

func TestGigRepository_LoadMissingKey(t *testing.T) {
	repo := NewGigRepository(newMockKV(), "saved_gigs")

	gigs, err := repo.LoadGigs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, gigs)
	assert.Empty(t, gigs)
}

func TestGigRepository_SaveNilWritesEmptyArray(t *testing.T) {
	kv := newMockKV()
	repo := NewGigRepository(kv, "saved_gigs")

	require.NoError(t, repo.SaveGigs(context.Background(), nil))
	assert.Equal(t, "[]", kv.data["saved_gigs"])
}

func TestGigRepository_Errors(t *testing.T) {
	ctx := context.Background()

	kv := newMockKV()
	kv.putErr = errors.New("disk full")
	err := NewGigRepository(kv, "saved_gigs").SaveGigs(ctx, []model.Gig{sampleGig()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save gigs")

	kv = newMockKV()
	kv.getErr = errors.New("connection reset")
	_, err = NewGigRepository(kv, "saved_gigs").LoadGigs(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load gigs")

	kv = newMockKV()
	kv.data["saved_gigs"] = "{broken"
	_, err = NewGigRepository(kv, "saved_gigs").LoadGigs(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode gigs")
}

func TestGigRepository_Clear(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	kv.data["other"] = "keep"
	repo := NewGigRepository(kv, "saved_gigs")
	require.NoError(t, repo.SaveGigs(ctx, []model.Gig{sampleGig()}))

	require.NoError(t, repo.ClearGigs(ctx))

	gigs, err := repo.LoadGigs(ctx)
	require.NoError(t, err)
	assert.Empty(t, gigs)
	assert.Equal(t, "keep", kv.data["other"])
}
