package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/civicdata/bill-sponsors/people"
)

// Header is the first row of every report.
var Header = []string{
	"name",
	"sponsored",
	"cosponsored-original",
	"cosponsored-later",
	"titles_sponsor",
	"titles_original_cosponsor",
	"titles_later_cosponsor",
}

// Row returns the report fields for s, each sanitized once.
func Row(s people.Stats) ([]string, error) {
	row := []string{
		SanitizeField(s.Name),
		strconv.Itoa(s.Sponsored),
		strconv.Itoa(s.OriginalCosponsored),
		strconv.Itoa(s.LaterCosponsored),
	}
	for _, titles := range [][]string{s.SponsoredTitles, s.OriginalCosponsoredTitles, s.LaterCosponsoredTitles} {
		field, err := joinTitles(titles)
		if err != nil {
			return nil, err
		}
		row = append(row, field)
	}
	return row, nil
}

// WriteCSV writes the header and one row per person, in the given order.
func WriteCSV(w io.Writer, ranked []people.Stats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range ranked {
		row, err := Row(s)
		if err != nil {
			return fmt.Errorf("encoding titles of %s: %w", s.Name, err)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates or truncates path and writes the report to it.
func WriteFile(path string, ranked []people.Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := WriteCSV(f, ranked); err != nil {
		f.Close()
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report %s: %w", path, err)
	}
	return nil
}

// ReadCSV parses a report written by WriteCSV.
func ReadCSV(r io.Reader) ([]people.Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty report")
	}
	if err != nil {
		return nil, err
	}
	for i, h := range Header {
		if header[i] != h {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], h)
		}
	}

	ranked := []people.Stats{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return ranked, nil
		}
		if err != nil {
			return nil, err
		}
		s, err := parseRow(record)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ranked = append(ranked, s)
	}
}

// ReadFile parses the report stored at path.
func ReadFile(path string) ([]people.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ranked, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	return ranked, nil
}

func parseRow(record []string) (people.Stats, error) {
	var counts [3]int
	for i := range counts {
		n, err := strconv.Atoi(record[i+1])
		if err != nil {
			return people.Stats{}, fmt.Errorf("column %s: %w", Header[i+1], err)
		}
		counts[i] = n
	}
	var titles [3][]string
	for i := range titles {
		t, err := splitTitles(record[i+4])
		if err != nil {
			return people.Stats{}, fmt.Errorf("column %s: %w", Header[i+4], err)
		}
		titles[i] = t
	}
	return people.Stats{
		Name:                      record[0],
		Sponsored:                 counts[0],
		OriginalCosponsored:       counts[1],
		LaterCosponsored:          counts[2],
		SponsoredTitles:           titles[0],
		OriginalCosponsoredTitles: titles[1],
		LaterCosponsoredTitles:    titles[2],
	}, nil
}
