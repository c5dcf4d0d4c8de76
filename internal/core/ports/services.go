package ports

import (
	"context"
	"time"

	"transaction-anonymizer/internal/core/domain"
)

// Anonymizer is the deterministic pseudonymization engine. One instance owns
// one run's substitution caches; instances must not be shared between
// concurrent runs unless entangled pseudonyms are wanted.
type Anonymizer interface {
	AnonymizeTransaction(rec domain.Record) domain.Record
	AnonymizeEnvelope(env domain.Envelope) (domain.Envelope, error)
	Mappings() domain.MappingSnapshot
}

// Analyzer detects relationships across snapshots of the corpus: pending ->
// booked transitions and duplicate sightings. Read-only over its input.
type Analyzer interface {
	Analyze(envelopes []domain.Envelope) domain.RelationshipReport
}

// AccountSummary aggregates one account's captured snapshots.
type AccountSummary struct {
	AccountID        string
	TotalRecords     int
	PendingTotal     int
	BookedTotal      int
	FirstTransaction string
	LastTransaction  string
}

// CorpusStats aggregates the whole corpus.
type CorpusStats struct {
	TotalAccounts  int
	TotalEnvelopes int
	PendingTotal   int
	BookedTotal    int
}

// CorpusService is the read surface the API serves: account listing, paginated
// per-account envelopes, summaries and corpus-wide stats, plus an on-demand
// relationship analysis.
type CorpusService interface {
	Accounts(ctx context.Context) ([]string, error)
	AccountEnvelopes(ctx context.Context, accountID string, page, perPage int) ([]domain.Envelope, int, error)
	AccountSummary(ctx context.Context, accountID string) (*AccountSummary, error)
	Stats(ctx context.Context) (*CorpusStats, error)
	Relationships(ctx context.Context) (*domain.RelationshipReport, error)
}

// AuthService authenticates the operator for the sensitive endpoints
// (anonymization mappings, relationship report).
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// MappingsProvider exposes the mapping snapshot written by the last
// anonymization run, if any.
type MappingsProvider interface {
	Mappings(ctx context.Context) (*domain.MappingSnapshot, error)
}
