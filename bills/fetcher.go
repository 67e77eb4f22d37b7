package bills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the root of the congress.gov v3 API.
const DefaultBaseURL = "https://api.congress.gov/v3"

// Fetcher retrieves bills from the API, one request at a time.
type Fetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewFetcher returns a Fetcher for the API rooted at baseURL. Request
// timeouts are taken from the client.
func NewFetcher(baseURL, apiKey string, client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// ResourceURLs returns the detail, cosponsors and titles URLs for id.
func (f *Fetcher) ResourceURLs(id Identifier) (detail, cosponsors, titles string) {
	base := f.baseURL + "/bill/" + url.PathEscape(id.Session) + "/" + url.PathEscape(string(id.Type)) + "/" + url.PathEscape(id.Number)
	query := url.Values{}
	query.Set("api_key", f.apiKey)
	query.Set("format", "json")
	q := "?" + query.Encode()
	return base + q, base + "/cosponsors" + q, base + "/titles" + q
}

// Fetch issues the detail, cosponsors and titles requests in that order and
// builds a Bill from the three responses.
func (f *Fetcher) Fetch(ctx context.Context, id Identifier) (Bill, error) {
	detailURL, cosponsorsURL, titlesURL := f.ResourceURLs(id)

	var d detailResponse
	if err := f.get(ctx, detailURL, &d); err != nil {
		return Bill{}, err
	}
	sponsors, err := d.sponsors()
	if err != nil {
		return Bill{}, f.located(err, detailURL)
	}

	var c cosponsorsResponse
	if err := f.get(ctx, cosponsorsURL, &c); err != nil {
		return Bill{}, err
	}
	original, later, err := c.partition()
	if err != nil {
		return Bill{}, f.located(err, cosponsorsURL)
	}

	var t titlesResponse
	if err := f.get(ctx, titlesURL, &t); err != nil {
		return Bill{}, err
	}
	titles, err := t.titles()
	if err != nil {
		return Bill{}, f.located(err, titlesURL)
	}

	return assemble(sponsors, original, later, titles), nil
}

func (f *Fetcher) get(ctx context.Context, resource string, v interface{}) error {
	redacted := f.redact(resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resource, nil)
	if err != nil {
		return &FetchError{URL: redacted, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return &FetchError{URL: redacted, Err: f.scrub(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &FetchError{URL: redacted, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{URL: redacted, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding body: %w", err)}
	}
	return nil
}

func (f *Fetcher) located(err error, resource string) error {
	var se *ShapeError
	if errors.As(err, &se) {
		return &ShapeError{URL: f.redact(resource), Field: se.Field}
	}
	return err
}

// redact hides the API key so URLs can be logged. Only the api_key query
// value is touched.
func (f *Fetcher) redact(resource string) string {
	u, err := url.Parse(resource)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if _, ok := q["api_key"]; !ok {
		return resource
	}
	q.Set("api_key", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}

// scrub removes the API key from client errors, which quote the request URL.
func (f *Fetcher) scrub(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return &url.Error{Op: ue.Op, URL: f.redact(ue.URL), Err: ue.Err}
	}
	return err
}
