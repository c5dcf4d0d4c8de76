package service

import (
	"transaction-anonymizer/internal/core/domain"
	"transaction-anonymizer/internal/core/ports"

	"github.com/rs/zerolog"
)

// Pipeline drives one anonymization run over a whole corpus: it applies the
// engine envelope by envelope, skips structurally invalid envelopes without
// aborting the run, and surfaces every skip as a reported anomaly.
type Pipeline struct {
	anonymizer ports.Anonymizer
	log        zerolog.Logger
}

// PipelineResult is the outcome of one run.
type PipelineResult struct {
	Envelopes []domain.Envelope
	Mappings  domain.MappingSnapshot
	Summary   domain.RunSummary
}

// NewPipeline creates a pipeline around one engine instance. The engine's
// caches accumulate across the whole run, which is what keeps pseudonyms
// consistent corpus-wide.
func NewPipeline(anonymizer ports.Anonymizer, log zerolog.Logger) *Pipeline {
	return &Pipeline{anonymizer: anonymizer, log: log}
}

// Run anonymizes the corpus in input order.
func (p *Pipeline) Run(envelopes []domain.Envelope) PipelineResult {
	result := PipelineResult{
		Envelopes: make([]domain.Envelope, 0, len(envelopes)),
		Summary:   domain.RunSummary{EnvelopesIn: len(envelopes)},
	}

	for i, env := range envelopes {
		anonymized, err := p.anonymizer.AnonymizeEnvelope(env)
		if err != nil {
			p.log.Warn().
				Int("envelope_index", i).
				Err(err).
				Msg("skipping malformed envelope")
			result.Summary.EnvelopesSkipped++
			result.Summary.Anomalies = append(result.Summary.Anomalies, domain.Anomaly{
				EnvelopeIndex: i,
				AccountID:     env.Metadata.AccountID,
				Reason:        err.Error(),
			})
			continue
		}

		result.Summary.PendingRecords += len(anonymized.Payload.Pending)
		result.Summary.BookedRecords += len(anonymized.Payload.Booked)
		result.Envelopes = append(result.Envelopes, anonymized)
	}

	result.Mappings = p.anonymizer.Mappings()

	p.log.Info().
		Int("envelopes_in", result.Summary.EnvelopesIn).
		Int("envelopes_skipped", result.Summary.EnvelopesSkipped).
		Int("pending_records", result.Summary.PendingRecords).
		Int("booked_records", result.Summary.BookedRecords).
		Int("accounts", result.Mappings.Stats.AccountsAnonymized).
		Int("keys_preserved", result.Mappings.Stats.RelationshipsPreserved).
		Msg("anonymization run complete")

	return result
}
