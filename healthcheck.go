package main

import (
	"errors"
	"fmt"

	"github.com/Financial-Times/go-fthealth/v1a"
	"github.com/civicdata/bill-sponsors/people"
)

func setUpHealthCheck(ranked []people.Stats) v1a.Check {

	checker := func() (string, error) {
		if len(ranked) == 0 {
			return "", errors.New("report has no legislators")
		}
		return fmt.Sprintf("Serving authorship stats for %d legislators, top sponsor is %s", len(ranked), ranked[0].Name), nil
	}

	return v1a.Check{
		BusinessImpact:   "Legislator authorship rankings are unavailable",
		Name:             "Report loaded",
		PanicGuide:       "Check the run logs for skipped bill URLs and rerun against a valid URL file",
		Severity:         2,
		TechnicalSummary: "The report served by this instance contains no legislators",
		Checker:          checker,
	}
}
