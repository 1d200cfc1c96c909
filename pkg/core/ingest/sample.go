package ingest

import "github.com/jakechorley/gig-matcher/pkg/core/model"

// SampleBands is the fallback roster used when the bands CSV can't be loaded
func SampleBands() []model.Band {
	return []model.Band{
		{
			ID:       "1",
			Name:     "Electric Wolves",
			Genres:   []string{"Rock", "Alternative"},
			Location: "London, England",
			Country:  model.CountryEngland,
			Status:   model.DefaultStatus,
			URL:      "https://electricwolves.bandcamp.com",
			Contact:  "electricWolves@gmail.com",
			Bio:      "High-energy rock band from London with a passion for alternative sounds.",
		},
		{
			ID:       "2",
			Name:     "Midnight Echoes",
			Genres:   []string{"Indie", "Electronic"},
			Location: "Bristol, England",
			Country:  model.CountryEngland,
			Status:   model.DefaultStatus,
			URL:      "https://midnightechoes.bandcamp.com",
			Bio:      "Electronic indie duo creating atmospheric soundscapes.",
		},
		{
			ID:       "3",
			Name:     "The Broken Strings",
			Genres:   []string{"Folk", "Acoustic"},
			Location: "Edinburgh, Scotland",
			Country:  model.CountryScotland,
			Status:   model.DefaultStatus,
			Bio:      "Traditional folk with a modern twist, storytelling through music.",
		},
		{
			ID:       "4",
			Name:     "Neon Nights",
			Genres:   []string{"Electronic", "Synthwave"},
			Location: "London, England",
			Country:  model.CountryEngland,
			Status:   model.DefaultStatus,
			URL:      "https://neonnights.bandcamp.com",
			Contact:  "neonnights666@gmail.com",
			Bio:      "Synthwave collective bringing 80s vibes to modern dancefloors.",
		},
	}
}
