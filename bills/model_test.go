package bills

import (
	"encoding/json"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

const (
	detailJSON = `{"bill": {"number": "1234", "sponsors": [{"bioguideId": "X000001", "fullName": "Rep. Smith, Jane [D-CA-12]"}]}}`

	cosponsorsJSON = `{"cosponsors": [
		{"fullName": "Rep. Jones, Bob [R-TX-1]", "isOriginalCosponsor": true},
		{"fullName": "Sen. Lee, Ann [D-NY]", "isOriginalCosponsor": false},
		{"fullName": "Rep. Park, Kim [D-WA-9]", "isOriginalCosponsor": true}
	]}`

	titlesJSON = `{"titles": [
		{"title": "To amend title 5, United States Code, and for other purposes.", "titleType": "Official Title as Introduced"},
		{"title": "Clean Water Act", "titleType": "Short Title(s) as Introduced"},
		{"title": "Fair Pay, Now", "titleType": "Short Title(s) as Passed House"}
	]}`
)

func decodeBill(t *testing.T, detail, cosponsors, titles string) (Bill, error) {
	t.Helper()
	var d detailResponse
	var c cosponsorsResponse
	var tt titlesResponse
	for _, p := range []struct {
		raw string
		v   interface{}
	}{{detail, &d}, {cosponsors, &c}, {titles, &tt}} {
		if err := json.Unmarshal([]byte(p.raw), p.v); err != nil {
			t.Fatalf("Bad fixture %s: %v", p.raw, err)
		}
	}

	sponsors, err := d.sponsors()
	if err != nil {
		return Bill{}, err
	}
	original, later, err := c.partition()
	if err != nil {
		return Bill{}, err
	}
	ts, err := tt.titles()
	if err != nil {
		return Bill{}, err
	}
	return assemble(sponsors, original, later, ts), nil
}

func TestPayloadsAreNormalized(t *testing.T) {
	assert := assert.New(t)

	b, err := decodeBill(t, detailJSON, cosponsorsJSON, titlesJSON)

	assert.NoError(err)
	assert.Equal([]string{"Rep. Smith; Jane [D-CA-12]"}, b.Sponsors)
	assert.Equal([]string{"Rep. Jones; Bob [R-TX-1]", "Rep. Park; Kim [D-WA-9]"}, b.OriginalCosponsors)
	assert.Equal([]string{"Sen. Lee; Ann [D-NY]"}, b.LaterCosponsors)
	assert.Equal([]string{
		"To amend title 5 United States Code and for other purposes.",
		"Clean Water Act",
		"Fair Pay Now",
	}, b.Titles)
	assert.Equal("Fair Pay Now", b.ShortestTitle)
}

func TestShortestTitleTieKeepsFirst(t *testing.T) {
	assert := assert.New(t)

	b, err := decodeBill(t, detailJSON, `{"cosponsors": []}`, `{"titles": [{"title": "Long title here"}, {"title": "Beta"}, {"title": "Alfa"}]}`)

	assert.NoError(err)
	assert.Equal("Beta", b.ShortestTitle)
	assert.Empty(b.OriginalCosponsors)
	assert.Empty(b.LaterCosponsors)
}

func TestShortestTitleIsMinimal(t *testing.T) {
	assert := assert.New(t)

	cases := [][]string{
		{"a"},
		{"abc", "ab", "abcd"},
		{"Ünïcode", "longer ascii"},
		{"same", "size", "four"},
	}
	for _, titles := range cases {
		s := shortest(titles)
		assert.Contains(titles, s)
		for _, other := range titles {
			assert.True(utf8.RuneCountInString(s) <= utf8.RuneCountInString(other), "%q longer than %q", s, other)
		}
	}
}

func TestMissingFieldsAreShapeErrors(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		detail, cosponsors, titles string
		field                      string
	}{
		{`{}`, cosponsorsJSON, titlesJSON, "bill"},
		{`{"bill": {}}`, cosponsorsJSON, titlesJSON, "bill.sponsors"},
		{`{"bill": {"sponsors": [{"lastName": "Smith"}]}}`, cosponsorsJSON, titlesJSON, "bill.sponsors[].fullName"},
		{detailJSON, `{"pagination": {}}`, titlesJSON, "cosponsors"},
		{detailJSON, `{"cosponsors": [{"isOriginalCosponsor": true}]}`, titlesJSON, "cosponsors[].fullName"},
		{detailJSON, cosponsorsJSON, `{}`, "titles"},
		{detailJSON, cosponsorsJSON, `{"titles": [{"titleType": "Official"}]}`, "titles[].title"},
		{detailJSON, cosponsorsJSON, `{"titles": []}`, "titles[0]"},
	}

	for _, c := range cases {
		_, err := decodeBill(t, c.detail, c.cosponsors, c.titles)
		var shapeErr *ShapeError
		if assert.True(errors.As(err, &shapeErr), "expected shape error for %s", c.field) {
			assert.Equal(c.field, shapeErr.Field)
		}
	}
}
