package content

import (
	"fmt"
	"sort"
	"strings"
)

// Rendering of a finished List into the YAML-flavored text consumed by
// Kometa poster configs. Rendering reads the list without mutating it, so
// repeated renders of the same list are byte-identical.

var sectionDivider = "# " + strings.Repeat("-", 80)

// Render serializes the list. Sections appear in fixed display order and
// empty sections are skipped. Seasons never form a top-level section; they
// only appear nested under their show.
func (l *List) Render() string {
	var b strings.Builder
	writeSection(&b, "Collections", l.Collections)
	writeSection(&b, "Movies", l.Movies)
	writeSection(&b, "Shows", l.Shows)
	writeSection(&b, "Unknown", l.Other)
	return b.String()
}

func writeSection(b *strings.Builder, header string, records []*Content) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n# %s\n", sectionDivider, header)
	for _, c := range records {
		b.WriteString(formatContent(c))
		b.WriteByte('\n')
	}
}

// formatContent renders one record's block. An unrecognized type yields an
// explicit placeholder line rather than failing the render.
func formatContent(c *Content) string {
	switch c.Type {
	case TypeCollection, TypeMovie:
		return fmt.Sprintf("%s:\n  url_poster: %s", c.FinalTitle(), c.PosterURL())
	case TypeShow:
		base := fmt.Sprintf("%s:\n  url_poster: %s", c.FinalTitle(), c.PosterURL())
		if len(c.Seasons) == 0 {
			return base
		}
		nums := make([]int, 0, len(c.Seasons))
		for n := range c.Seasons {
			nums = append(nums, n)
		}
		sort.Ints(nums)
		lines := make([]string, 0, len(nums))
		for _, n := range nums {
			lines = append(lines, formatContent(c.Seasons[n]))
		}
		return base + "\n  seasons:\n    " + strings.Join(lines, "\n    ")
	case TypeSeason:
		return fmt.Sprintf("%d: {url_poster: %s}", c.SeasonNumber, c.PosterURL())
	default:
		return fmt.Sprintf("<Bad content type %q>", string(c.Type))
	}
}
