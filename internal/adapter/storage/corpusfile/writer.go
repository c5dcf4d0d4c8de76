package corpusfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"transaction-anonymizer/internal/core/domain"
)

// WriteCorpus writes the anonymized corpus as one flat JSON array.
func WriteCorpus(path string, envelopes []domain.Envelope) error {
	return writeJSON(path, envelopes)
}

// WriteReport writes the relationship report.
func WriteReport(path string, report domain.RelationshipReport) error {
	return writeJSON(path, report)
}

// WriteMappings writes the pseudonym mappings. The file links originals to
// fakes, so it must never ship alongside the published corpus.
func WriteMappings(path string, snap domain.MappingSnapshot) error {
	return writeJSON(path, snap)
}

// WriteSample writes the first n envelopes of the corpus for manual review.
func WriteSample(path string, envelopes []domain.Envelope, n int) error {
	if n > len(envelopes) {
		n = len(envelopes)
	}
	return writeJSON(path, envelopes[:n])
}

// LoadCorpus reads a flat anonymized corpus file back into memory. Inverse of
// WriteCorpus; the API's memory backend serves from this.
func LoadCorpus(path string) ([]domain.Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	var envelopes []domain.Envelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	return envelopes, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
