package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/civicdata/bill-sponsors/people"
	"github.com/stretchr/testify/assert"
)

var servedReport = []people.Stats{
	{Name: "Rep. Smith; Jane [D-CA-12]", Sponsored: 2, SponsoredTitles: []string{"Clean Water Act", "Roads Act"}, OriginalCosponsoredTitles: []string{}, LaterCosponsoredTitles: []string{}},
	{Name: "Sen. Lee; Ann [D-NY]", LaterCosponsored: 1, SponsoredTitles: []string{}, OriginalCosponsoredTitles: []string{}, LaterCosponsoredTitles: []string{"Roads Act"}},
}

func newTestRouter(t *testing.T, ranked []people.Stats) http.Handler {
	t.Helper()
	h, err := newReportHandler(ranked)
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}
	return router(h)
}

func TestPeopleList(t *testing.T) {
	assert := assert.New(t)
	r := newTestRouter(t, servedReport)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people", nil))

	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(rec.Header().Get("ETag"))

	var got []people.Stats
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(servedReport, got)
}

func TestPeopleListNotModified(t *testing.T) {
	assert := assert.New(t)
	r := newTestRouter(t, servedReport)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/people", nil))

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	req.Header.Set("If-None-Match", first.Header().Get("ETag"))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, req)

	assert.Equal(http.StatusNotModified, second.Code)
	assert.Empty(second.Body.String())
}

func TestPersonRead(t *testing.T) {
	assert := assert.New(t)
	r := newTestRouter(t, servedReport)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people/"+url.PathEscape("Sen. Lee; Ann [D-NY]"), nil))

	assert.Equal(http.StatusOK, rec.Code)
	var got struct {
		Rank int `json:"rank"`
		people.Stats
	}
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(2, got.Rank)
	assert.Equal(servedReport[1], got.Stats)
}

func TestPersonReadNotFound(t *testing.T) {
	r := newTestRouter(t, servedReport)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people/nobody", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCountAndPing(t *testing.T) {
	assert := assert.New(t)
	r := newTestRouter(t, servedReport)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/__count", nil))
	assert.Equal("2", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal("pong", rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	assert := assert.New(t)

	msg, err := setUpHealthCheck(servedReport).Checker()
	assert.NoError(err)
	assert.Contains(msg, "2 legislators")

	_, err = setUpHealthCheck(nil).Checker()
	assert.Error(err)
}
