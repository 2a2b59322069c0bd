// Package scrape extracts raw poster records from a saved ThePosterDB
// collection page. It locates the markup nodes and nothing more; all
// classification happens downstream in the content package.
package scrape

import (
	"fmt"
	"io"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// Default CSS selectors for the current TPDb collection page markup. They can
// be overridden through the config file when the site layout drifts.
const (
	DefaultPosterSelector = "div.overlay.rounded-poster"
	DefaultTitleSelector  = "p.p-0.mb-1.text-break"
)

// Poster is one raw catalog entry in page order: the poster asset id, the
// declared content type, and the title text exactly as it appears.
type Poster struct {
	ID    int
	Type  string
	Title string
}

// Options select which markup nodes poster records are read from. Zero
// values fall back to the defaults above.
type Options struct {
	PosterSelector string
	TitleSelector  string
}

func (o Options) posterSelector() string {
	if o.PosterSelector == "" {
		return DefaultPosterSelector
	}
	return o.PosterSelector
}

func (o Options) titleSelector() string {
	if o.TitleSelector == "" {
		return DefaultTitleSelector
	}
	return o.TitleSelector
}

// Posters extracts every poster entry from the page, preserving document
// order. A poster without a numeric id or without a title violates the page
// contract and aborts the scrape. A missing or unrecognized poster type is
// not an error; it flows through and renders as a placeholder.
func Posters(r io.Reader, opts Options, logger zerolog.Logger) ([]Poster, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var posters []Poster
	var scrapeErr error
	doc.Find(opts.posterSelector()).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		rawID, ok := sel.Attr("data-poster-id")
		if !ok {
			scrapeErr = fmt.Errorf("poster element %d: missing data-poster-id", i)
			return false
		}
		id, err := strconv.Atoi(rawID)
		if err != nil {
			scrapeErr = fmt.Errorf("poster element %d: invalid data-poster-id %q: %w", i, rawID, err)
			return false
		}
		typ, _ := sel.Attr("data-poster-type")
		title := sel.Find(opts.titleSelector()).First().Text()
		if title == "" {
			scrapeErr = fmt.Errorf("poster %d: missing title", id)
			return false
		}
		logger.Debug().Int("id", id).Str("type", typ).Str("title", title).Msg("Scraped poster")
		posters = append(posters, Poster{ID: id, Type: typ, Title: title})
		return true
	})
	if scrapeErr != nil {
		return nil, scrapeErr
	}
	logger.Debug().Int("count", len(posters)).Msg("Finished scraping page")
	return posters, nil
}
