package genres

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Categorize returns the name of the first category with a keyword contained
// in genre, ignoring case. Genres matching nothing are OtherCategory.
func Categorize(genre string) string {
	folded := fold(strings.TrimSpace(genre))

	for _, category := range categories {
		if matchesAny(folded, category.Keywords) {
			return category.Name
		}
	}

	return OtherCategory
}

// GenresForCategory returns the genres from allGenres that belong to the named
// category, sorted. For OtherCategory it returns the genres that match no
// category at all. Unknown category names yield an empty result.
func GenresForCategory(allGenres []string, categoryName string) []string {
	var keep func(folded string) bool

	if categoryName == OtherCategory {
		keep = func(folded string) bool {
			for _, category := range categories {
				if matchesAny(folded, category.Keywords) {
					return false
				}
			}
			return true
		}
	} else {
		category, ok := findCategory(categoryName)
		if !ok {
			return []string{}
		}
		keep = func(folded string) bool {
			return matchesAny(folded, category.Keywords)
		}
	}

	result := make([]string, 0)
	for _, genre := range allGenres {
		if keep(fold(genre)) {
			result = append(result, genre)
		}
	}
	sort.Strings(result)

	return result
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

func matchesAny(foldedGenre string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(foldedGenre, fold(keyword)) {
			return true
		}
	}
	return false
}

// fold creates a new Caser on each call; Casers are stateful and not safe to share
func fold(s string) string {
	return cases.Fold().String(s)
}
