package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/angrycuban13/TPDbCollectionMaker/internal/content"
)

// Styles for the run summary printed after the entries are emitted.
var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	summaryLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	summaryCountStyle  = lipgloss.NewStyle().Bold(true)
)

// printSummary reports how many entries of each kind were generated. It
// writes to stderr so piped stdout stays clean.
func printSummary(w io.Writer, l *content.List) {
	fmt.Fprintln(w, summaryHeaderStyle.Render("Generated entries"))
	writeCount(w, "Collections", len(l.Collections))
	writeCount(w, "Movies", len(l.Movies))
	writeCount(w, "Shows", len(l.Shows))
	writeCount(w, "Seasons", len(l.Seasons))
	if n := len(l.Other); n > 0 {
		writeCount(w, "Unknown", n)
	}
}

func writeCount(w io.Writer, label string, n int) {
	fmt.Fprintf(w, "  %s %s\n", summaryLabelStyle.Render(label+":"), summaryCountStyle.Render(strconv.Itoa(n)))
}
