package bills

import (
	"strings"
	"unicode/utf8"
)

// Bill is the normalized metadata of a single bill.
type Bill struct {
	ShortestTitle      string   `json:"shortestTitle"`
	Titles             []string `json:"titles"`
	Sponsors           []string `json:"sponsors"`
	OriginalCosponsors []string `json:"originalCosponsors"`
	LaterCosponsors    []string `json:"laterCosponsors"`
}

// payloads as returned by the API, pointers let us tell a missing key from an empty one.
// Person names have commas replaced with semicolons and titles have commas
// removed so neither can break a delimited report.
type detailResponse struct {
	Bill *struct {
		Sponsors *[]member `json:"sponsors"`
	} `json:"bill"`
}

type cosponsorsResponse struct {
	Cosponsors *[]cosponsor `json:"cosponsors"`
}

type titlesResponse struct {
	Titles *[]title `json:"titles"`
}

type member struct {
	FullName *string `json:"fullName"`
}

type cosponsor struct {
	FullName            *string `json:"fullName"`
	IsOriginalCosponsor bool    `json:"isOriginalCosponsor"`
}

type title struct {
	Title *string `json:"title"`
}

// assemble builds a Bill from normalized role lists and a non-empty title list.
func assemble(sponsors, original, later, titles []string) Bill {
	return Bill{
		ShortestTitle:      shortest(titles),
		Titles:             titles,
		Sponsors:           sponsors,
		OriginalCosponsors: original,
		LaterCosponsors:    later,
	}
}

func (d detailResponse) sponsors() ([]string, error) {
	if d.Bill == nil {
		return nil, &ShapeError{Field: "bill"}
	}
	if d.Bill.Sponsors == nil {
		return nil, &ShapeError{Field: "bill.sponsors"}
	}
	names := []string{}
	for _, s := range *d.Bill.Sponsors {
		if s.FullName == nil {
			return nil, &ShapeError{Field: "bill.sponsors[].fullName"}
		}
		names = append(names, personName(*s.FullName))
	}
	return names, nil
}

// partition splits cosponsors into those who joined at introduction and those who joined later.
func (c cosponsorsResponse) partition() (original []string, later []string, err error) {
	if c.Cosponsors == nil {
		return nil, nil, &ShapeError{Field: "cosponsors"}
	}
	original, later = []string{}, []string{}
	for _, cs := range *c.Cosponsors {
		if cs.FullName == nil {
			return nil, nil, &ShapeError{Field: "cosponsors[].fullName"}
		}
		if cs.IsOriginalCosponsor {
			original = append(original, personName(*cs.FullName))
		} else {
			later = append(later, personName(*cs.FullName))
		}
	}
	return original, later, nil
}

func (t titlesResponse) titles() ([]string, error) {
	if t.Titles == nil {
		return nil, &ShapeError{Field: "titles"}
	}
	var titles []string
	for _, tt := range *t.Titles {
		if tt.Title == nil {
			return nil, &ShapeError{Field: "titles[].title"}
		}
		titles = append(titles, strings.ReplaceAll(*tt.Title, ",", ""))
	}
	if len(titles) == 0 {
		return nil, &ShapeError{Field: "titles[0]"}
	}
	return titles, nil
}

func personName(fullName string) string {
	return strings.ReplaceAll(fullName, ",", ";")
}

// shortest returns the first string of minimum length.
func shortest(titles []string) string {
	s := titles[0]
	for _, t := range titles[1:] {
		if utf8.RuneCountInString(t) < utf8.RuneCountInString(s) {
			s = t
		}
	}
	return s
}
