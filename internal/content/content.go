package content

import (
	"fmt"
	"strings"
)

// posterURLFormat is the display URL for every TPDb poster asset.
const posterURLFormat = "https://theposterdb.com/api/assets/%d"

// Type classifies a poster entry. Unknown values scraped from the page are
// carried through unchanged so a bad entry degrades to a placeholder line at
// render time instead of failing the whole run.
type Type string

const (
	TypeCollection Type = "Collection"
	TypeMovie      Type = "Movie"
	TypeShow       Type = "Show"
	TypeSeason     Type = "Season"
)

// Content is one classified poster entry. A record declared as a Show by the
// page is reclassified to TypeSeason at construction when its title carries a
// season suffix; the type never changes afterwards.
type Content struct {
	ID            int
	Type          Type
	Title         string // raw title exactly as scraped
	YearlessTitle string
	SeasonNumber  int // meaningful only when Type == TypeSeason; 0 is Specials
	UseYear       bool
	MustQuote     bool

	// Seasons maps season number to the owned season record. Only shows hold
	// children; season records carry no back-reference to their show.
	Seasons map[int]*Content
}

// New builds a classified record from one scraped poster entry. An empty
// title violates the scraper contract and fails fast.
func New(id int, declared Type, title string, alwaysQuote bool) (*Content, error) {
	if title == "" {
		return nil, fmt.Errorf("poster %d: missing title", id)
	}
	parsed, err := ParseTitle(title, declared)
	if err != nil {
		return nil, fmt.Errorf("poster %d: %w", id, err)
	}
	return &Content{
		ID:            id,
		Type:          parsed.Type,
		Title:         title,
		YearlessTitle: parsed.YearlessTitle,
		SeasonNumber:  parsed.SeasonNumber,
		MustQuote:     alwaysQuote || strings.Contains(title, ": "),
		Seasons:       map[int]*Content{},
	}, nil
}

// PosterURL returns the display URL for this poster's asset.
func (c *Content) PosterURL() string {
	return fmt.Sprintf(posterURLFormat, c.ID)
}

// FinalTitle returns the display title: the raw title when the record needs
// year disambiguation, the yearless title otherwise, quoted when required.
func (c *Content) FinalTitle() string {
	title := c.YearlessTitle
	if c.UseYear {
		title = c.Title
	}
	if c.MustQuote {
		return `"` + title + `"`
	}
	return title
}

// IsSubContentOf reports whether c is a season belonging to show. The raw
// substring check guards against two different shows sharing a stripped
// title.
func (c *Content) IsSubContentOf(show *Content) bool {
	if c.Type != TypeSeason || show.Type != TypeShow {
		return false
	}
	return show.YearlessTitle == c.YearlessTitle && strings.Contains(c.Title, show.Title)
}

// AddSubContent links season under c, keyed by season number.
func (c *Content) AddSubContent(season *Content) {
	c.Seasons[season.SeasonNumber] = season
}
