package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/civicdata/bill-sponsors/bills"
	"github.com/civicdata/bill-sponsors/people"
	"github.com/civicdata/bill-sponsors/report"
	"github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"
)

func main() {
	app := cli.App("bill-sponsors", "Ranks legislators by the bills they sponsored and cosponsored")
	apiKeyFile := app.String(cli.StringOpt{
		Name:   "api-key-file",
		Value:  "../API_keys/congress_API.txt",
		Desc:   "File holding the congress.gov API key",
		EnvVar: "API_KEY_FILE",
	})
	urlFile := app.String(cli.StringOpt{
		Name:   "url-file",
		Value:  "urls.txt",
		Desc:   "File with one congress.gov bill URL per line",
		EnvVar: "URL_FILE",
	})
	output := app.String(cli.StringOpt{
		Name:   "output",
		Value:  "results.csv",
		Desc:   "Where to write the CSV report",
		EnvVar: "OUTPUT_FILE",
	})
	apiURL := app.String(cli.StringOpt{
		Name:   "api-url",
		Value:  bills.DefaultBaseURL,
		Desc:   "Base URL of the congress.gov API",
		EnvVar: "API_URL",
	})
	timeout := app.String(cli.StringOpt{
		Name:   "timeout",
		Value:  "30s",
		Desc:   "Timeout for each API request",
		EnvVar: "REQUEST_TIMEOUT",
	})
	logLevel := app.String(cli.StringOpt{
		Name:   "log-level",
		Value:  "info",
		Desc:   "Logging level (debug, info, warn, error)",
		EnvVar: "LOG_LEVEL",
	})

	loadConfig := func() config {
		if err := InitLogging(*logLevel, os.Stderr); err != nil {
			log.Fatalf("Invalid log level %q: %v", *logLevel, err)
		}
		d, err := time.ParseDuration(*timeout)
		if err != nil || d <= 0 {
			log.Fatalf("Invalid timeout %q", *timeout)
		}
		return config{
			apiKeyFile: *apiKeyFile,
			urlFile:    *urlFile,
			output:     *output,
			apiURL:     *apiURL,
			timeout:    d,
		}
	}

	app.Action = func() {
		cfg := loadConfig()
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if _, err := runAnalysis(ctx, cfg, os.Stdout); err != nil {
			log.Errorf("Analysis failed: %v", err)
			cli.Exit(1)
		}
	}

	app.Command("serve", "Serve the ranked report over HTTP", func(cmd *cli.Cmd) {
		port := cmd.String(cli.StringOpt{
			Name:   "port",
			Value:  "8080",
			Desc:   "Port to listen on",
			EnvVar: "PORT",
		})
		existing := cmd.String(cli.StringOpt{
			Name:   "report",
			Value:  "",
			Desc:   "Serve this existing CSV report instead of fetching bills",
			EnvVar: "REPORT_FILE",
		})

		cmd.Action = func() {
			cfg := loadConfig()
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var ranked []people.Stats
			var err error
			if *existing != "" {
				ranked, err = report.ReadFile(*existing)
			} else {
				ranked, err = runAnalysis(ctx, cfg, os.Stdout)
			}
			if err != nil {
				log.Errorf("Loading report failed: %v", err)
				cli.Exit(1)
			}

			if err := serve(ctx, *port, ranked); err != nil {
				log.Errorf("Server failed: %v", err)
				cli.Exit(1)
			}
		}
	})

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
