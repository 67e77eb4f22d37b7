package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Financial-Times/go-fthealth/v1a"
	"github.com/civicdata/bill-sponsors/people"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type reportHandler struct {
	ranked []people.Stats
	byName map[string]int
	etag   string
}

func newReportHandler(ranked []people.Stats) (*reportHandler, error) {
	etag, err := people.ReportETag(ranked)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int, len(ranked))
	for i, s := range ranked {
		byName[s.Name] = i
	}
	return &reportHandler{ranked: ranked, byName: byName, etag: etag}, nil
}

func router(h *reportHandler) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/people", h.peopleList).Methods("GET")
	r.HandleFunc("/people/{name}", h.personRead).Methods("GET")
	r.HandleFunc("/__count", h.count).Methods("GET")
	r.HandleFunc("/__health", v1a.Handler("BillSponsors Healthchecks",
		"Checks the authorship report is loaded", setUpHealthCheck(h.ranked)))
	r.HandleFunc("/ping", ping)
	return handlers.CombinedLoggingHandler(os.Stdout, r)
}

func ping(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "pong")
}

func (h *reportHandler) peopleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.etag, h.ranked)
}

func (h *reportHandler) personRead(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	i, found := h.byName[name]
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s := h.ranked[i]
	etag, err := people.ETag(s)
	if err != nil {
		log.Errorf("Error on hashing %s=%v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, etag, struct {
		Rank int `json:"rank"`
		people.Stats
	}{i + 1, s})
}

func (h *reportHandler) count(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "%d", len(h.ranked))
}

func writeJSON(w http.ResponseWriter, r *http.Request, etag string, v interface{}) {
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Error on json encoding=%v", err)
	}
}

// serve blocks until ctx is cancelled, then shuts the server down.
func serve(ctx context.Context, port string, ranked []people.Stats) error {
	h, err := newReportHandler(ranked)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router(h),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Serving %d legislators on port %s", len(ranked), port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
