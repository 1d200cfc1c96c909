package catalog

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// ErrNotFound is returned when a mutation targets an ID that isn't in the catalog
var ErrNotFound = errors.New("not found")

// Catalog owns the band roster and the gig list for a session.
// Readers receive copies. A Catalog is not safe for concurrent use.
type Catalog struct {
	bands []model.Band
	gigs  []model.Gig
}

func New() *Catalog {
	return &Catalog{
		bands: []model.Band{},
		gigs:  []model.Gig{},
	}
}

// Bands

func (c *Catalog) Bands() []model.Band {
	return copyBands(c.bands)
}

func (c *Catalog) FindBand(id string) (model.Band, bool) {
	i := c.bandIndex(id)
	if i < 0 {
		return model.Band{}, false
	}
	return copyBand(c.bands[i]), true
}

// AddBand appends a band, giving it a fresh ID when its own is blank or
// already taken. The stored band is returned.
func (c *Catalog) AddBand(band model.Band) model.Band {
	if band.ID == "" || c.bandIndex(band.ID) >= 0 {
		band.ID = uuid.New().String()
	}
	band = copyBand(band)
	c.bands = append(c.bands, band)
	return copyBand(band)
}

// ImportBands adds each band in turn with the AddBand ID rule, so a parsed
// file can be merged into an existing roster without ID clashes
func (c *Catalog) ImportBands(bands []model.Band) []model.Band {
	added := make([]model.Band, 0, len(bands))
	for _, band := range bands {
		added = append(added, c.AddBand(band))
	}
	return added
}

// ReplaceBands publishes a whole roster, discarding the previous one
func (c *Catalog) ReplaceBands(bands []model.Band) {
	c.bands = copyBands(bands)
}

// ReplaceBand swaps the band with the same ID
func (c *Catalog) ReplaceBand(band model.Band) error {
	i := c.bandIndex(band.ID)
	if i < 0 {
		return ErrNotFound
	}
	c.bands[i] = copyBand(band)
	return nil
}

func (c *Catalog) bandIndex(id string) int {
	for i, b := range c.bands {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Gigs

func (c *Catalog) Gigs() []model.Gig {
	out := make([]model.Gig, 0, len(c.gigs))
	for _, g := range c.gigs {
		out = append(out, copyGig(g))
	}
	return out
}

func (c *Catalog) FindGig(id string) (model.Gig, bool) {
	i := c.gigIndex(id)
	if i < 0 {
		return model.Gig{}, false
	}
	return copyGig(c.gigs[i]), true
}

func (c *Catalog) AddGig(gig model.Gig) {
	c.gigs = append(c.gigs, copyGig(gig))
}

// ReplaceGig swaps the gig with the same ID
func (c *Catalog) ReplaceGig(gig model.Gig) error {
	i := c.gigIndex(gig.ID)
	if i < 0 {
		return ErrNotFound
	}
	c.gigs[i] = copyGig(gig)
	return nil
}

func (c *Catalog) RemoveGig(id string) error {
	i := c.gigIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	c.gigs = append(c.gigs[:i:i], c.gigs[i+1:]...)
	return nil
}

// ReplaceGigs publishes a whole gig list, discarding the previous one
func (c *Catalog) ReplaceGigs(gigs []model.Gig) {
	c.gigs = make([]model.Gig, 0, len(gigs))
	for _, g := range gigs {
		c.gigs = append(c.gigs, copyGig(g))
	}
}

func (c *Catalog) gigIndex(id string) int {
	for i, g := range c.gigs {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func copyBand(b model.Band) model.Band {
	b.Genres = append([]string{}, b.Genres...)
	return b
}

func copyBands(bands []model.Band) []model.Band {
	out := make([]model.Band, 0, len(bands))
	for _, b := range bands {
		out = append(out, copyBand(b))
	}
	return out
}

func copyGig(g model.Gig) model.Gig {
	g.Genres = append([]string{}, g.Genres...)
	g.MatchingBands = copyBands(g.MatchingBands)
	g.SelectedBands = copyBands(g.SelectedBands)
	return g
}
