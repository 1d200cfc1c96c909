package model

import "strings"

// DefaultStatus is the status given to bands that don't declare one
const DefaultStatus = "Active"

type Country string

const (
	CountryEngland         Country = "England"
	CountryScotland        Country = "Scotland"
	CountryWales           Country = "Wales"
	CountryNorthernIreland Country = "Northern Ireland"
	CountryIreland         Country = "Ireland"
	CountryUnknown         Country = "Unknown"
)

// Countries returns every known country, Unknown last
func Countries() []Country {
	return []Country{
		CountryEngland,
		CountryScotland,
		CountryWales,
		CountryNorthernIreland,
		CountryIreland,
		CountryUnknown,
	}
}

func (c Country) IsValid() bool {
	for _, known := range Countries() {
		if c == known {
			return true
		}
	}
	return false
}

// Band represents a performing act
type Band struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" validate:"required"`
	Genres   []string `json:"genres" validate:"min=1,dive,required"`
	Location string   `json:"location" validate:"required"`
	Country  Country  `json:"country"`
	Status   string   `json:"status"`
	URL      string   `json:"url,omitempty" validate:"omitempty,url"`
	Contact  string   `json:"contact,omitempty"`
	Bio      string   `json:"bio,omitempty"`
}

// CityName returns the part of the location before the first comma, trimmed.
// "London, England" -> "London"
func (b Band) CityName() string {
	city, _, _ := strings.Cut(b.Location, ",")
	return strings.TrimSpace(city)
}

// HasGenre reports whether the band lists the genre exactly
func (b Band) HasGenre(genre string) bool {
	for _, g := range b.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Gig represents a promoter's event listing.
//
// MatchingBands is a snapshot taken when the gig is created or edited and is
// never re-evaluated against later roster changes. SelectedBands is the
// promoter's pick and changes over the gig's lifetime.
type Gig struct {
	ID            string   `json:"id"`
	Title         string   `json:"title" validate:"required"`
	PromoterName  string   `json:"promoterName" validate:"required"`
	Genres        []string `json:"genres" validate:"min=1,dive,required"`
	City          string   `json:"city" validate:"required"`
	Country       Country  `json:"country" validate:"required"`
	MatchingBands []Band   `json:"matchingBands"`
	SelectedBands []Band   `json:"selectedBands"`
}
