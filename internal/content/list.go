package content

// List accumulates classified posters into ordered, append-only buckets, one
// per content type. Records arriving with an unrecognized type land in Other
// so they still surface in the output.
type List struct {
	Collections []*Content
	Movies      []*Content
	Shows       []*Content
	Seasons     []*Content
	Other       []*Content
}

// NewList returns an empty registry.
func NewList() *List {
	return &List{}
}

func (l *List) bucket(t Type) *[]*Content {
	switch t {
	case TypeCollection:
		return &l.Collections
	case TypeMovie:
		return &l.Movies
	case TypeShow:
		return &l.Shows
	case TypeSeason:
		return &l.Seasons
	default:
		return &l.Other
	}
}

// Add folds one record into the list. It must be called in document order:
// linking and collision detection depend on the partial state built by the
// records added before.
func (l *List) Add(n *Content) {
	// A season belongs to at most one show: first match wins.
	for _, show := range l.Shows {
		if n.IsSubContentOf(show) {
			show.AddSubContent(n)
			break
		}
	}

	// A new show adopts every orphan season that was scraped before it
	// arrived. Page layout does not guarantee shows precede their seasons.
	if n.Type == TypeShow {
		for _, season := range l.Seasons {
			if season.IsSubContentOf(n) {
				n.AddSubContent(season)
			}
		}
	}

	// An identical raw title already in this bucket forces year-qualified
	// display on the newer entry only.
	bucket := l.bucket(n.Type)
	for _, existing := range *bucket {
		if existing.Type == n.Type && existing.Title == n.Title {
			n.UseYear = true
			break
		}
	}

	*bucket = append(*bucket, n)
}
