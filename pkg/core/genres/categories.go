package genres

// OtherCategory is returned for genres that match no category keyword
const OtherCategory = "Other"

// Category groups free-text genres by keyword
type Category struct {
	Name     string
	Keywords []string
}

// Order matters: categorisation returns the first category, and within it the
// first keyword, that matches.
var categories = []Category{
	{
		Name: "Metal",
		Keywords: []string{
			"Heavy Metal", "Death Metal", "Black Metal", "Doom Metal", "Thrash Metal",
			"Power Metal", "Progressive Metal", "Symphonic Metal", "Folk Metal",
			"Viking Metal", "Pagan Metal", "Melodic Death Metal", "Technical Death Metal",
			"Brutal Death Metal", "Blackened Death Metal", "Atmospheric Black Metal",
			"Depressive Black Metal", "Raw Black Metal", "Symphonic Black Metal",
			"Progressive Black Metal", "Melodic Black Metal", "Post-Black Metal",
			"Atmospheric Death Metal", "Technical Thrash Metal", "Crossover Thrash",
			"Blackened Thrash Metal", "Speed Metal", "NWOBHM", "Traditional Heavy Metal",
			"Epic Metal", "Gothic Metal", "Industrial Metal", "Nu Metal",
			"Alternative Metal", "Groove Metal", "Southern Metal", "Stoner Metal",
			"Sludge Metal", "Post-Metal", "Atmospheric Metal", "Experimental Metal",
			"Avant-garde Metal", "Dark Metal", "Extreme Metal", "Underground Metal",
		},
	},
	{
		Name: "Rock",
		Keywords: []string{
			"Hard Rock", "Alternative Rock", "Progressive Rock", "Psychedelic Rock",
			"Post-Rock", "Indie Rock", "Classic Rock", "Blues Rock", "Southern Rock",
			"Garage Rock", "Punk Rock", "Post-Punk", "New Wave", "Shoegaze",
			"Britpop", "Grunge", "Noise Rock", "Math Rock", "Experimental Rock",
			"Art Rock", "Krautrock", "Space Rock", "Stoner Rock", "Desert Rock",
		},
	},
	{
		Name: "Hardcore & Core",
		Keywords: []string{
			"Hardcore", "Metalcore", "Deathcore", "Grindcore", "Mathcore",
			"Post-Hardcore", "Melodic Hardcore", "Hardcore Punk", "Beatdown Hardcore",
			"Crossover", "Powerviolence", "Fastcore", "Crustcore", "Sludgecore",
			"Noisecore", "Goregrind", "Pornogrind", "Mincecore", "Thrashcore",
		},
	},
	{
		Name: "Electronic & Industrial",
		Keywords: []string{
			"Electronic", "Industrial", "Industrial Metal", "Industrial Rock",
			"EBM", "Dark Electro", "Synthwave", "Darkwave", "Coldwave",
			"Ambient", "Dark Ambient", "Drone", "Noise", "Power Electronics",
			"Harsh Noise", "Dungeon Synth", "Martial Industrial", "Neofolk Electronic",
			"Cyber Metal", "Digital Hardcore", "Breakcore", "IDM", "Techno",
		},
	},
	{
		Name: "Punk",
		Keywords: []string{
			"Punk", "Hardcore Punk", "Crust Punk", "D-Beat", "Street Punk",
			"Oi!", "Post-Punk", "Anarcho-Punk", "Celtic Punk", "Folk Punk",
			"Ska Punk", "Pop Punk", "Melodic Punk", "Horror Punk", "Psychobilly",
		},
	},
	{
		Name: "Experimental & Avant-garde",
		Keywords: []string{
			"Experimental", "Avant-garde", "Free Jazz", "Improvisation",
			"Musique Concrète", "Sound Art", "Field Recording", "Microsound",
			"Lowercase", "Onkyokei", "Reductionism", "Extended Technique",
			"Prepared Instruments", "Circuit Bending", "Glitch", "Plunderphonics",
		},
	},
}

// Categories returns a copy of the category table
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}

// CategoryNames returns every category name in order, followed by OtherCategory
func CategoryNames() []string {
	names := make([]string, 0, len(categories)+1)
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return append(names, OtherCategory)
}

// IsCategory reports whether name is a known category, including OtherCategory
func IsCategory(name string) bool {
	if name == OtherCategory {
		return true
	}
	_, ok := findCategory(name)
	return ok
}

func findCategory(name string) (*Category, bool) {
	for i := range categories {
		if categories[i].Name == name {
			return &categories[i], true
		}
	}
	return nil, false
}
