package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// rawGenreSeparators are the delimiters found in unedited roster exports
const rawGenreSeparators = "/,;"

// parentheticalNote matches qualifiers such as "(early)" or "(later)"
var parentheticalNote = regexp.MustCompile(`\([^)]*\)`)

// genreNames completes shorthand genres to their full names. Entries that
// would map a genre to itself are left out.
var genreNames = map[string]string{
	// Bare metal styles
	"Black":      "Black Metal",
	"Death":      "Death Metal",
	"Doom":       "Doom Metal",
	"Thrash":     "Thrash Metal",
	"Power":      "Power Metal",
	"Heavy":      "Heavy Metal",
	"Folk":       "Folk Metal",
	"Gothic":     "Gothic Metal",
	"Industrial": "Industrial Metal",
	"Pagan":      "Pagan Metal",
	"Viking":     "Viking Metal",
	"Stoner":     "Stoner Metal",
	"Sludge":     "Sludge Metal",

	// Descriptors used on their own
	"Progressive":  "Progressive Metal",
	"Symphonic":    "Symphonic Metal",
	"Technical":    "Technical Death Metal",
	"Melodic":      "Melodic Metal",
	"Atmospheric":  "Atmospheric Metal",
	"Experimental": "Experimental Metal",
	"Avant-garde":  "Avant-garde Metal",
	"Epic":         "Epic Metal",
	"Brutal":       "Brutal Death Metal",

	// Compound styles missing their suffix
	"Atmospheric Black":             "Atmospheric Black Metal",
	"Industrial Death":              "Industrial Death Metal",
	"Melodic Death":                 "Melodic Death Metal",
	"Technical Death":               "Technical Death Metal",
	"Symphonic Black":               "Symphonic Black Metal",
	"Progressive Death":             "Progressive Death Metal",
	"Progressive Black":             "Progressive Black Metal",
	"Melodic Black":                 "Melodic Black Metal",
	"Industrial Black":              "Industrial Black Metal",
	"Experimental Black":            "Experimental Black Metal",
	"Avant-garde Black":             "Avant-garde Black Metal",
	"Progressive Doom":              "Progressive Doom Metal",
	"Melodic Doom":                  "Melodic Doom Metal",
	"Atmospheric Doom":              "Atmospheric Doom Metal",
	"Psychedelic Doom":              "Psychedelic Doom Metal",
	"Experimental Psychedelic Doom": "Experimental Psychedelic Doom Metal",
	"Progressive Heavy":             "Progressive Heavy Metal",
	"Melodic Heavy":                 "Melodic Heavy Metal",
	"Progressive Thrash":            "Progressive Thrash Metal",
	"Melodic Thrash":                "Melodic Thrash Metal",
	"Technical Thrash":              "Technical Thrash Metal",
	"Progressive Power":             "Progressive Power Metal",
	"Symphonic Power":               "Symphonic Power Metal",
	"Symphonic Death":               "Symphonic Death Metal",
	"Progressive Sludge":            "Progressive Sludge Metal",
	"Atmospheric Sludge":            "Atmospheric Sludge Metal",
	"Experimental Sludge":           "Experimental Sludge Metal",
	"Psychedelic Sludge":            "Psychedelic Sludge Metal",
	"Progressive Stoner":            "Progressive Stoner Metal",
	"Experimental Stoner":           "Experimental Stoner Metal",
	"Psychedelic Stoner":            "Psychedelic Stoner Metal",
	"Progressive Groove":            "Progressive Groove Metal",
	"Industrial Groove":             "Industrial Groove Metal",
	"Melodic Groove":                "Melodic Groove Metal",
	"Symphonic Folk":                "Symphonic Folk Metal",
	"Atmospheric Folk":              "Atmospheric Folk Metal",
	"Avant-garde Post-Black":        "Avant-garde Post-Black Metal",

	// Rock and punk
	"Psychedelic": "Psychedelic Rock",
	"Alternative": "Alternative Rock",
	"Indie":       "Indie Rock",
	"Math":        "Math Rock",
	"Post Rock":   "Post-Rock",
	"Crust":       "Crust Punk",
	"Grind":       "Grindcore",
}

// CleanGenreField splits a raw genre field on "/", "," and ";", strips
// parenthetical notes, drops blanks and duplicates and rejoins the rest
// sorted with "/".
func CleanGenreField(field string) string {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, piece := range splitRawGenres(field) {
		g := strings.TrimSpace(parentheticalNote.ReplaceAllString(piece, ""))
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		genres = append(genres, g)
	}

	sort.Strings(genres)
	return strings.Join(genres, genreSeparator)
}

// StandardizeGenre returns the full name for a shorthand genre, or the
// trimmed genre unchanged when it has no mapping
func StandardizeGenre(genre string) string {
	g := strings.TrimSpace(genre)
	if full, ok := genreNames[g]; ok {
		return full
	}
	return g
}

// StandardizeGenreField maps every genre in a field to its full name, keeping
// order. A genre that maps onto one already present is dropped.
func StandardizeGenreField(field string) string {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, piece := range splitRawGenres(field) {
		g := StandardizeGenre(piece)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		genres = append(genres, g)
	}
	return strings.Join(genres, genreSeparator)
}

func splitRawGenres(field string) []string {
	return strings.FieldsFunc(field, func(r rune) bool {
		return strings.ContainsRune(rawGenreSeparators, r)
	})
}

// CleanResult summarises a CleanBands run
type CleanResult struct {
	Rows    int
	Changed int
	// Changes maps each original genre field that changed to its new value
	Changes map[string]string
}

// CleanBands copies a bands CSV from r to w, rewriting the genre column with
// CleanGenreField followed by StandardizeGenreField. The genre column is found
// by its header name, falling back to the third column. Other columns and
// rows too short to hold a genre are copied as read, so a row that is already
// malformed stays on its own line.
func CleanBands(r io.Reader, w io.Writer) (CleanResult, error) {
	result := CleanResult{Changes: make(map[string]string)}
	writer := csv.NewWriter(w)
	genreCol := colGenre

	var writeErr error
	err := scanRecords(r, func(record []string, header bool) {
		if writeErr != nil || record == nil {
			return
		}
		if header {
			genreCol = genreColumn(record)
			writeErr = writer.Write(record)
			return
		}

		result.Rows++
		if genreCol < len(record) {
			original := record[genreCol]
			cleaned := StandardizeGenreField(CleanGenreField(original))
			if cleaned != strings.TrimSpace(original) {
				result.Changed++
				result.Changes[original] = cleaned
			}
			record[genreCol] = cleaned
		}
		writeErr = writer.Write(record)
	})
	if err != nil {
		return CleanResult{}, err
	}
	if writeErr != nil {
		return CleanResult{}, fmt.Errorf("failed to write bands csv: %w", writeErr)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return CleanResult{}, fmt.Errorf("failed to write bands csv: %w", err)
	}

	return result, nil
}

func genreColumn(header []string) int {
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "genre") {
			return i
		}
	}
	return colGenre
}
