package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/civicdata/bill-sponsors/people"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	labelStyle = lipgloss.NewStyle().Faint(true)
)

// PrintConsole writes one line per person with every report field.
func PrintConsole(w io.Writer, ranked []people.Stats) error {
	for _, s := range ranked {
		if _, err := fmt.Fprintln(w, ConsoleLine(s)); err != nil {
			return err
		}
	}
	return nil
}

// ConsoleLine summarizes s on a single line.
func ConsoleLine(s people.Stats) string {
	var b strings.Builder
	b.WriteString(nameStyle.Render(SanitizeField(s.Name)))
	b.WriteString(" ")
	b.WriteString(countStyle.Render(fmt.Sprintf("sponsored=%d original=%d later=%d", s.Sponsored, s.OriginalCosponsored, s.LaterCosponsored)))
	for _, part := range []struct {
		label  string
		titles []string
	}{
		{"sponsored titles", s.SponsoredTitles},
		{"original cosponsor titles", s.OriginalCosponsoredTitles},
		{"later cosponsor titles", s.LaterCosponsoredTitles},
	} {
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(part.label + ":"))
		b.WriteString(" [")
		b.WriteString(strings.Join(part.titles, "; "))
		b.WriteString("]")
	}
	return b.String()
}
