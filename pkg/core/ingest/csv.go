package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// Column positions in the bands CSV: name,url,genre,location[,status]
const (
	colName = iota
	colURL
	colGenre
	colLocation
	colStatus

	minColumns = colLocation + 1
)

// genreSeparator splits the genre column into individual genres
const genreSeparator = "/"

// maxLineBytes bounds a single CSV line
const maxLineBytes = 1 << 20

// ParseBands reads a bands CSV. The first non-empty line is a header and is
// always skipped. Rows with fewer than four fields are dropped.
//
// Each physical line is one row. Quoting is honoured within a line, but an
// unterminated quote never runs into the next line, so a malformed row only
// loses itself.
//
// IDs are assigned "1", "2", ... in row order and are only unique within a
// single call; callers merging results into an existing roster must not rely
// on them being globally unique.
//
// A read error aborts parsing and no bands are returned.
func ParseBands(r io.Reader) ([]model.Band, error) {
	bands := make([]model.Band, 0)
	nextID := 1

	err := scanRecords(r, func(record []string, header bool) {
		if header {
			return
		}
		band, ok := bandFromRecord(record)
		if !ok {
			return
		}
		band.ID = strconv.Itoa(nextID)
		nextID++

		bands = append(bands, band)
	})
	if err != nil {
		return nil, err
	}

	return bands, nil
}

// scanRecords calls fn once per non-empty line. The first call carries the
// header, which is nil if it did not parse. Data lines that do not parse are
// skipped.
func scanRecords(r io.Reader, fn func(record []string, header bool)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	headerSeen := false
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		record, ok := parseLine(line)
		if !headerSeen {
			headerSeen = true
			fn(record, true)
			continue
		}
		if !ok {
			continue
		}
		fn(record, false)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read bands csv: %w", err)
	}

	return nil
}

// parseLine splits one line into fields with a fresh reader so quoting state
// never carries across lines
func parseLine(line string) ([]string, bool) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	record, err := reader.Read()
	if err != nil {
		return nil, false
	}
	return record, true
}

// LoadFile opens the CSV at path and parses it with ParseBands
func LoadFile(path string) ([]model.Band, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bands csv: %w", err)
	}
	defer f.Close()

	return ParseBands(f)
}

func bandFromRecord(record []string) (model.Band, bool) {
	if len(record) < minColumns {
		return model.Band{}, false
	}

	location := strings.TrimSpace(record[colLocation])

	status := model.DefaultStatus
	if len(record) > colStatus {
		if s := strings.TrimSpace(record[colStatus]); s != "" {
			status = s
		}
	}

	return model.Band{
		Name:     strings.TrimSpace(record[colName]),
		URL:      strings.TrimSpace(record[colURL]),
		Genres:   SplitGenres(record[colGenre]),
		Location: location,
		Country:  DeriveCountry(location),
		Status:   status,
	}, true
}

// SplitGenres splits a "/"-separated genre string, trimming each piece and
// dropping blanks. No classification happens here.
func SplitGenres(genreField string) []string {
	genres := make([]string, 0)
	for _, piece := range strings.Split(genreField, genreSeparator) {
		if g := strings.TrimSpace(piece); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// DeriveCountry maps a free-text location to a country. Northern Ireland is
// checked before Ireland since the latter is a substring of the former.
func DeriveCountry(location string) model.Country {
	if strings.TrimSpace(location) == "" {
		return model.CountryUnknown
	}

	ordered := []model.Country{
		model.CountryNorthernIreland,
		model.CountryIreland,
		model.CountryEngland,
		model.CountryScotland,
		model.CountryWales,
	}
	for _, country := range ordered {
		if strings.Contains(location, string(country)) {
			return country
		}
	}

	return model.CountryUnknown
}
