package artist

import (
	"errors"
	"strings"
)

// yearSeparators are the range separators seen in the catalog corpus. The
// en-dash variant appears in roughly a third of the source rows.
var yearSeparators = []rune{'-', '–'}

var errNoSeparator = errors.New("year range has no separator")

// SplitYears splits a free-text year range such as "1853 – 1890" into its
// born and died halves on the first hyphen or en-dash, trimming surrounding
// whitespace. Both halves must be non-empty; no attempt is made to validate
// that they are numeric.
func SplitYears(years string) (born, died string, err error) {
	idx := strings.IndexFunc(years, func(r rune) bool {
		for _, sep := range yearSeparators {
			if r == sep {
				return true
			}
		}
		return false
	})
	if idx < 0 {
		return "", "", errNoSeparator
	}

	// The en-dash is multi-byte; step over the rune, not one byte.
	sepLen := 1
	for _, sep := range yearSeparators {
		if strings.HasPrefix(years[idx:], string(sep)) {
			sepLen = len(string(sep))
			break
		}
	}

	born = strings.TrimSpace(years[:idx])
	died = strings.TrimSpace(years[idx+sepLen:])
	if born == "" || died == "" {
		return "", "", errNoSeparator
	}
	return born, died, nil
}
