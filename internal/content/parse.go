package content

import (
	"fmt"
	"regexp"
	"strconv"
)

// Title parsing for TPDb poster entries.
//
// Poster titles on a collection page carry a parenthesized release year and,
// for season posters, a trailing season suffix. Both matchers are anchored at
// both ends and case-sensitive; no whitespace normalization is performed so
// titles round-trip exactly as scraped.
var (
	// yearlessRe captures the base title before a " (YYYY)" suffix, which may
	// itself be followed by a season suffix.
	yearlessRe = regexp.MustCompile(`^(.*) \(\d{4}\)(?: - (?:Season \d+|Specials))?$`)

	// seasonSuffixRe identifies season-specific titles. Group 1 holds the
	// season number; an empty group 1 means the "Specials" form matched.
	seasonSuffixRe = regexp.MustCompile(`^.* - (?:Season (\d+)|Specials)$`)
)

// ParsedTitle holds the normalized fields derived from one raw poster title.
type ParsedTitle struct {
	// YearlessTitle is the title with any trailing year / season suffix
	// stripped. Titles without a year pass through verbatim.
	YearlessTitle string

	// Type is the effective content type: TypeSeason when the title carries a
	// season suffix, otherwise the declared type unchanged.
	Type Type

	// SeasonNumber is meaningful only when Type is TypeSeason. Zero denotes
	// the Specials season.
	SeasonNumber int
}

// ParseTitle derives the yearless title, effective content type, and season
// number from a raw poster title. The declared type is kept unless the title
// identifies itself as a season.
func ParseTitle(raw string, declared Type) (ParsedTitle, error) {
	parsed := ParsedTitle{YearlessTitle: raw, Type: declared}
	if m := yearlessRe.FindStringSubmatch(raw); m != nil {
		parsed.YearlessTitle = m[1]
	}

	m := seasonSuffixRe.FindStringSubmatch(raw)
	if m == nil {
		return parsed, nil
	}
	parsed.Type = TypeSeason
	if m[1] == "" {
		// Specials render as season zero.
		parsed.SeasonNumber = 0
		return parsed, nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedTitle{}, fmt.Errorf("invalid season number %q in title %q: %w", m[1], raw, err)
	}
	parsed.SeasonNumber = n
	return parsed, nil
}
