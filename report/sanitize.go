package report

import (
	"encoding/csv"
	"strings"
)

// TitleSeparator delimits the titles of one role inside a single field.
// Titles holding the separator or a quote are quoted CSV-style.
const TitleSeparator = ';'

// SanitizeField makes s safe to use as a single field of the report by
// replacing commas with semicolons.
func SanitizeField(s string) string {
	return strings.ReplaceAll(s, ",", ";")
}

// joinTitles encodes titles as one record delimited by TitleSeparator.
// An empty list is the empty string; a list of one empty title is `""`.
func joinTitles(titles []string) (string, error) {
	switch {
	case len(titles) == 0:
		return "", nil
	case len(titles) == 1 && titles[0] == "":
		return `""`, nil
	}

	sanitized := make([]string, len(titles))
	for i, t := range titles {
		sanitized[i] = SanitizeField(t)
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = TitleSeparator
	if err := w.Write(sanitized); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// splitTitles reverses joinTitles.
func splitTitles(field string) ([]string, error) {
	if field == "" {
		return []string{}, nil
	}
	r := csv.NewReader(strings.NewReader(field))
	r.Comma = TitleSeparator
	return r.Read()
}
