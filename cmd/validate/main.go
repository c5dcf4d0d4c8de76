package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"transaction-anonymizer/internal/scoring"
	"transaction-anonymizer/pkg/logger"
)

func main() {
	candidateURL := flag.String("candidate-url", "", "candidate API base URL (e.g. http://localhost:3000)")
	sourceURL := flag.String("source-url", "http://localhost:8080", "reference corpus API URL")
	output := flag.String("output", "", "write the JSON report to this file")
	pretty := flag.Bool("pretty", true, "human-readable log output")
	flag.Parse()

	if *candidateURL == "" {
		fmt.Fprintln(os.Stderr, "usage: validate -candidate-url <url> [-source-url <url>] [-output <file>]")
		os.Exit(2)
	}

	log := logger.New("info", *pretty)

	ctx := context.Background()
	validator := scoring.New(*candidateURL, *sourceURL, log)

	if err := validator.LoadFixtures(ctx); err != nil {
		log.Fatal().Err(err).Str("source_url", *sourceURL).Msg("Failed to load test accounts")
	}

	report := validator.Run(ctx)

	log.Info().
		Float64("score", report.TotalScore).
		Float64("max_score", report.MaxTotalScore).
		Str("grade", report.Summary.Grade).
		Int("checks_passed", report.Summary.ChecksPassed).
		Int("checks_run", report.Summary.ChecksRun).
		Msg("Validation complete")

	if *output != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to encode report")
		}
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("Failed to write report")
		}
		log.Info().Str("file", *output).Msg("Report saved")
	}

	if !report.Passing() {
		os.Exit(1)
	}
}
