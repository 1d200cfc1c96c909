package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// parseCountry matches s against the known countries, ignoring case.
// A blank string is returned as the empty country.
func parseCountry(s string) (model.Country, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	names := make([]string, 0, len(model.Countries()))
	for _, c := range model.Countries() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
		names = append(names, string(c))
	}
	return "", fmt.Errorf("unknown country %q (expected one of: %s)", s, strings.Join(names, ", "))
}

// trimAll trims each value and drops blanks
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func printBandLine(w io.Writer, b model.Band) {
	fmt.Fprintf(w, "  %-38s %s - %s - %s [%s]\n",
		b.ID,
		b.Name,
		strings.Join(b.Genres, " / "),
		b.Location,
		b.Status,
	)
}

func printBandDetail(w io.Writer, b model.Band) {
	fmt.Fprintf(w, "\n%s\n\n", b.Name)
	fmt.Fprintf(w, "ID:       %s\n", b.ID)
	fmt.Fprintf(w, "Genres:   %s\n", strings.Join(b.Genres, " / "))
	fmt.Fprintf(w, "Location: %s\n", b.Location)
	fmt.Fprintf(w, "Country:  %s\n", b.Country)
	fmt.Fprintf(w, "Status:   %s\n", b.Status)
	if b.URL != "" {
		fmt.Fprintf(w, "URL:      %s\n", b.URL)
	}
	if b.Contact != "" {
		fmt.Fprintf(w, "Contact:  %s\n", b.Contact)
	}
	if b.Bio != "" {
		fmt.Fprintf(w, "\n%s\n", b.Bio)
	}
	fmt.Fprintln(w)
}

func printGigHeader(w io.Writer, g model.Gig) {
	fmt.Fprintf(w, "\n%s\n\n", g.Title)
	fmt.Fprintf(w, "ID:       %s\n", g.ID)
	fmt.Fprintf(w, "Promoter: %s\n", g.PromoterName)
	fmt.Fprintf(w, "Genres:   %s\n", strings.Join(g.Genres, ", "))
	fmt.Fprintf(w, "Where:    %s, %s\n", g.City, g.Country)
}

func printBandList(w io.Writer, title string, bands []model.Band) {
	fmt.Fprintf(w, "\n%s (%d):\n", title, len(bands))
	if len(bands) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, b := range bands {
		printBandLine(w, b)
	}
}
