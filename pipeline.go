package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/civicdata/bill-sponsors/bills"
	"github.com/civicdata/bill-sponsors/people"
	"github.com/civicdata/bill-sponsors/report"
	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
)

type config struct {
	apiKeyFile string
	urlFile    string
	output     string
	apiURL     string
	timeout    time.Duration
}

// BillFetcher retrieves the metadata of one bill.
type BillFetcher interface {
	Fetch(ctx context.Context, id bills.Identifier) (bills.Bill, error)
}

// runAnalysis reads the inputs, fetches every bill, and writes the ranked
// report to cfg.output and console.
func runAnalysis(ctx context.Context, cfg config, console io.Writer) ([]people.Stats, error) {
	logger := log.WithField("run_id", uuid.New())

	apiKey, err := readAPIKey(cfg.apiKeyFile)
	if err != nil {
		return nil, err
	}
	urls, err := readURLs(cfg.urlFile)
	if err != nil {
		return nil, err
	}
	logger.Infof("Read %d bill URLs from %s", len(urls), cfg.urlFile)

	fetcher := bills.NewFetcher(cfg.apiURL, apiKey, &http.Client{Timeout: cfg.timeout})
	collected, err := collectBills(ctx, fetcher, urls, logger)
	if err != nil {
		return nil, err
	}

	ranked := people.Rank(people.Aggregate(collected))
	logger.Infof("Ranked %d legislators from %d of %d bills", len(ranked), len(collected), len(urls))

	if err := report.WriteFile(cfg.output, ranked); err != nil {
		return nil, err
	}
	logger.Infof("Wrote report to %s", cfg.output)

	if err := report.PrintConsole(console, ranked); err != nil {
		return nil, fmt.Errorf("printing report: %w", err)
	}
	return ranked, nil
}

// collectBills fetches each URL in order. A URL that cannot be parsed or
// fetched is logged and skipped.
func collectBills(ctx context.Context, fetcher BillFetcher, urls []string, logger *log.Entry) ([]bills.Bill, error) {
	collected := []bills.Bill{}
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		l := logger.WithField("url", u)

		id, err := bills.ParseURL(u)
		if err != nil {
			l.WithError(err).Warn("Skipping URL")
			continue
		}

		b, err := fetcher.Fetch(ctx, id)
		if err != nil {
			l.WithError(err).WithField("bill", id.String()).Warn("Skipping URL")
			continue
		}

		l.WithField("bill", id.String()).Debugf("Fetched %q", b.ShortestTitle)
		collected = append(collected, b)
	}
	return collected, nil
}

func readAPIKey(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", fmt.Errorf("API key file %s is empty", path)
	}
	return key, nil
}

func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading URL list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading URL list %s: %w", path, err)
	}
	return urls, nil
}
