package main

import (
	"context"
	"fmt"
	"os"

	"transaction-anonymizer/config"
	"transaction-anonymizer/internal/adapter/storage/corpusfile"
	pgStorage "transaction-anonymizer/internal/adapter/storage/postgres"
	"transaction-anonymizer/internal/service"
	"transaction-anonymizer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("raw_dir", cfg.Corpus.RawDir).
		Uint64("seed", cfg.Anonymizer.Seed).
		Float64("variance", cfg.Anonymizer.Variance).
		Msg("Starting anonymization run")

	// Walk the partitioned capture tree
	walker := corpusfile.NewWalker(cfg.Corpus.RawDir, log)
	envelopes, err := walker.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load raw captures")
	}
	if len(envelopes) == 0 {
		log.Fatal().Str("raw_dir", cfg.Corpus.RawDir).Msg("No captures found")
	}
	log.Info().Int("envelopes", len(envelopes)).Msg("Raw captures loaded")

	// Anonymize
	engine := service.NewAnonymizer(cfg.Anonymizer.Seed, cfg.Anonymizer.Variance)
	pipeline := service.NewPipeline(engine, log)
	result := pipeline.Run(envelopes)

	// Analyze the anonymized corpus; identity keys survive anonymization, so
	// the report matches one produced over the raw corpus.
	analyzer := service.NewRelationshipAnalyzer()
	report := analyzer.Analyze(result.Envelopes)
	log.Info().
		Int("transitions", len(report.PendingToBooked)).
		Int("duplicates", len(report.Duplicates)).
		Msg("Relationship analysis complete")

	// Write run artifacts
	if err := corpusfile.WriteCorpus(cfg.Corpus.DataFile, result.Envelopes); err != nil {
		log.Fatal().Err(err).Str("file", cfg.Corpus.DataFile).Msg("Failed to write corpus")
	}
	if err := corpusfile.WriteReport(cfg.Corpus.ReportFile, report); err != nil {
		log.Fatal().Err(err).Str("file", cfg.Corpus.ReportFile).Msg("Failed to write relationship report")
	}
	if err := corpusfile.WriteMappings(cfg.Corpus.MappingsFile, result.Mappings); err != nil {
		log.Fatal().Err(err).Str("file", cfg.Corpus.MappingsFile).Msg("Failed to write mappings")
	}
	if err := corpusfile.WriteSample(cfg.Corpus.SampleFile, result.Envelopes, cfg.Corpus.SampleSize); err != nil {
		log.Fatal().Err(err).Str("file", cfg.Corpus.SampleFile).Msg("Failed to write sample")
	}

	// Optionally load the result into PostgreSQL for the API to serve.
	if cfg.Storage.Backend == "postgres" {
		ctx := context.Background()
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		repo := pgStorage.NewCorpusRepo(pool)
		if err := repo.ReplaceCorpus(ctx, result.Envelopes); err != nil {
			log.Fatal().Err(err).Msg("Failed to load corpus into PostgreSQL")
		}
		log.Info().Msg("Corpus loaded into PostgreSQL")
	}

	log.Info().
		Int("envelopes_out", len(result.Envelopes)).
		Int("envelopes_skipped", result.Summary.EnvelopesSkipped).
		Str("data_file", cfg.Corpus.DataFile).
		Msg("Anonymization run finished")
}
