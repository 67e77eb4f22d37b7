package bills

import "strings"

// BillType is the short code the API uses for a kind of bill.
type BillType string

const (
	HouseBill                  BillType = "hr"
	SenateBill                 BillType = "s"
	HouseJointResolution       BillType = "hjres"
	SenateJointResolution      BillType = "sjres"
	HouseConcurrentResolution  BillType = "hconres"
	SenateConcurrentResolution BillType = "sconres"
	HouseResolution            BillType = "hres"
	SenateResolution           BillType = "sres"
)

var billTypesBySlug = map[string]BillType{
	"house-bill":                   HouseBill,
	"senate-bill":                  SenateBill,
	"house-joint-resolution":       HouseJointResolution,
	"senate-joint-resolution":      SenateJointResolution,
	"house-concurrent-resolution":  HouseConcurrentResolution,
	"senate-concurrent-resolution": SenateConcurrentResolution,
	"house-resolution":             HouseResolution,
	"senate-resolution":            SenateResolution,
}

// positions of the interesting segments once the URL is split on "/"
const (
	sessionSegment = 4
	typeSegment    = 5
	numberSegment  = 6
)

// Identifier addresses a bill in the API. Session and Number are kept as
// strings since they are only ever used to build paths.
type Identifier struct {
	Session string
	Type    BillType
	Number  string
}

func (id Identifier) String() string {
	return id.Session + "/" + string(id.Type) + "/" + id.Number
}

// BillTypeFromSlug maps the slug used by the web site to the API code.
func BillTypeFromSlug(slug string) (BillType, bool) {
	t, ok := billTypesBySlug[slug]
	return t, ok
}

// ParseURL extracts an Identifier from a web-facing bill URL such as
// https://www.congress.gov/bill/118th-congress/house-bill/1234?s=1
func ParseURL(rawURL string) (Identifier, error) {
	parts := strings.Split(strings.TrimSpace(rawURL), "/")
	if len(parts) <= numberSegment {
		return Identifier{}, &URLError{URL: rawURL, Err: ErrMalformedURL}
	}

	session := parts[sessionSegment]
	if len(session) > 3 {
		session = session[:3]
	}

	billType, ok := BillTypeFromSlug(parts[typeSegment])
	if !ok {
		return Identifier{}, &URLError{URL: rawURL, Segment: parts[typeSegment], Err: ErrUnknownBillType}
	}

	number := leadingDigits(parts[numberSegment])
	if number == "" {
		return Identifier{}, &URLError{URL: rawURL, Segment: parts[numberSegment], Err: ErrMalformedBillNumber}
	}

	return Identifier{Session: session, Type: billType, Number: number}, nil
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
