package ports

import (
	"context"

	"transaction-anonymizer/internal/core/domain"
)

// CorpusRepository is the persistence port for the anonymized corpus. Two
// adapters exist: an in-memory repository loaded from the anonymized JSON file
// (the default serving mode) and a PostgreSQL repository holding envelopes as
// JSONB rows.
type CorpusRepository interface {
	// AccountIDs returns every account id in the corpus, sorted ascending.
	AccountIDs(ctx context.Context) ([]string, error)
	// ByAccount returns the account's envelopes ordered by capture timestamp,
	// sliced by offset/limit, plus the account's total envelope count.
	// An unknown account yields (nil, 0, nil).
	ByAccount(ctx context.Context, accountID string, offset, limit int) ([]domain.Envelope, int, error)
	// All returns every envelope in the corpus (analysis input).
	All(ctx context.Context) ([]domain.Envelope, error)
	// AccountSummary aggregates one account. Unknown account yields (nil, nil).
	AccountSummary(ctx context.Context, accountID string) (*AccountSummary, error)
	// Stats aggregates the whole corpus.
	Stats(ctx context.Context) (*CorpusStats, error)
}

// CorpusWriter persists an anonymized corpus wholesale, replacing any previous
// contents. Used by the anonymization CLI when publishing to PostgreSQL.
type CorpusWriter interface {
	ReplaceCorpus(ctx context.Context, envelopes []domain.Envelope) error
}
