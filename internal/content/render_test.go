package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var divider = "# " + strings.Repeat("-", 80)

func buildList(t *testing.T, entries []struct {
	id    int
	typ   Type
	title string
}) *List {
	t.Helper()
	l := NewList()
	for _, e := range entries {
		l.Add(mustNew(t, e.id, e.typ, e.title))
	}
	return l
}

func TestRender_EndToEnd(t *testing.T) {
	t.Parallel()
	l := buildList(t, []struct {
		id    int
		typ   Type
		title string
	}{
		{1, TypeMovie, "Alpha"},
		{2, TypeMovie, "Alpha"},
		{3, TypeShow, "Bar (2020)"},
		{4, TypeShow, "Bar (2020) - Season 1"},
	})

	want := strings.Join([]string{
		divider,
		"# Movies",
		"Alpha:",
		"  url_poster: https://theposterdb.com/api/assets/1",
		"Alpha:",
		"  url_poster: https://theposterdb.com/api/assets/2",
		divider,
		"# Shows",
		"Bar:",
		"  url_poster: https://theposterdb.com/api/assets/3",
		"  seasons:",
		"    1: {url_poster: https://theposterdb.com/api/assets/4}",
		"",
	}, "\n")
	if diff := cmp.Diff(want, l.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SectionOrderAndSkipsEmpty(t *testing.T) {
	t.Parallel()
	l := buildList(t, []struct {
		id    int
		typ   Type
		title string
	}{
		{1, TypeShow, "Bar (2020)"},
		{2, TypeCollection, "The Alien Collection"},
	})

	got := l.Render()
	collections := strings.Index(got, "# Collections")
	shows := strings.Index(got, "# Shows")
	if collections == -1 || shows == -1 || collections > shows {
		t.Errorf("Render() = %q, want Collections section before Shows", got)
	}
	if strings.Contains(got, "# Movies") {
		t.Errorf("Render() = %q, want empty Movies section skipped", got)
	}
	if strings.Contains(got, "# Seasons") {
		t.Errorf("Render() = %q, want no top-level Seasons section", got)
	}
}

func TestRender_SeasonsSortedNumerically(t *testing.T) {
	t.Parallel()
	l := buildList(t, []struct {
		id    int
		typ   Type
		title string
	}{
		{1, TypeShow, "Bar (2020)"},
		{2, TypeShow, "Bar (2020) - Season 2"},
		{3, TypeShow, "Bar (2020) - Specials"},
		{4, TypeShow, "Bar (2020) - Season 1"},
	})

	got := l.Render()
	want := strings.Join([]string{
		"  seasons:",
		"    0: {url_poster: https://theposterdb.com/api/assets/3}",
		"    1: {url_poster: https://theposterdb.com/api/assets/4}",
		"    2: {url_poster: https://theposterdb.com/api/assets/2}",
	}, "\n")
	if !strings.Contains(got, want) {
		t.Errorf("Render() = %q, want seasons sorted as %q", got, want)
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()
	l := buildList(t, []struct {
		id    int
		typ   Type
		title string
	}{
		{1, TypeMovie, "Alpha (1999)"},
		{2, TypeShow, "Bar (2020)"},
		{3, TypeShow, "Bar (2020) - Season 3"},
		{4, TypeShow, "Bar (2020) - Season 1"},
	})

	first := l.Render()
	second := l.Render()
	if first != second {
		t.Errorf("Render() not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestRender_QuotesTitleWithColon(t *testing.T) {
	t.Parallel()
	l := buildList(t, []struct {
		id    int
		typ   Type
		title string
	}{
		{1, TypeMovie, "Mission: Impossible (1996)"},
	})

	got := l.Render()
	if !strings.Contains(got, `"Mission: Impossible":`) {
		t.Errorf("Render() = %q, want quoted title line", got)
	}
}

func TestRender_YearQualifiedCollision(t *testing.T) {
	t.Parallel()
	l := buildList(t, []struct {
		id    int
		typ   Type
		title string
	}{
		{1, TypeMovie, "Dune (1984)"},
		{2, TypeMovie, "Dune (1984)"},
	})

	got := l.Render()
	if !strings.Contains(got, "Dune (1984):") {
		t.Errorf("Render() = %q, want second entry year-qualified", got)
	}
	if !strings.Contains(got, "Dune:") {
		t.Errorf("Render() = %q, want first entry yearless", got)
	}
}

func TestRender_BadTypePlaceholder(t *testing.T) {
	t.Parallel()
	l := buildList(t, []struct {
		id    int
		typ   Type
		title string
	}{
		{1, TypeMovie, "Alpha (1999)"},
		{2, Type("Widget"), "Strange"},
	})

	got := l.Render()
	if !strings.Contains(got, `<Bad content type "Widget">`) {
		t.Errorf("Render() = %q, want bad type placeholder line", got)
	}
	if !strings.Contains(got, "Alpha:") {
		t.Errorf("Render() = %q, want valid entries still rendered", got)
	}
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()
	if got := NewList().Render(); got != "" {
		t.Errorf("Render() = %q, want empty string for empty list", got)
	}
}
