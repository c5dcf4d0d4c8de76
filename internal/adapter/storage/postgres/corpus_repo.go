package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"transaction-anonymizer/internal/core/domain"
	"transaction-anonymizer/internal/core/ports"
)

// CorpusRepo implements ports.CorpusRepository and ports.CorpusWriter over a
// single JSONB table:
//
//	CREATE TABLE corpus_envelopes (
//	    id         BIGSERIAL PRIMARY KEY,
//	    account_id TEXT NOT NULL,
//	    created_at TEXT NOT NULL,
//	    body       JSONB NOT NULL
//	);
//	CREATE INDEX corpus_envelopes_account_idx ON corpus_envelopes (account_id, created_at, id);
//
// created_at holds the envelope's RFC 3339 capture timestamp verbatim; text
// ordering of that format is chronological, so the index gives capture order
// for free.
type CorpusRepo struct {
	pool Pool
}

var (
	_ ports.CorpusRepository = (*CorpusRepo)(nil)
	_ ports.CorpusWriter     = (*CorpusRepo)(nil)
)

// NewCorpusRepo creates a new CorpusRepo.
func NewCorpusRepo(pool Pool) *CorpusRepo {
	return &CorpusRepo{pool: pool}
}

// AccountIDs returns every distinct account id, sorted ascending.
func (r *CorpusRepo) AccountIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT account_id FROM corpus_envelopes ORDER BY account_id`)
	if err != nil {
		return nil, fmt.Errorf("query account ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan account id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ByAccount returns one page of the account's envelopes in capture order plus
// the account's total count. An unknown account yields (nil, 0, nil).
func (r *CorpusRepo) ByAccount(ctx context.Context, accountID string, offset, limit int) ([]domain.Envelope, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM corpus_envelopes WHERE account_id = $1`,
		accountID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count envelopes: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT body FROM corpus_envelopes WHERE account_id = $1
		 ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query envelopes: %w", err)
	}
	defer rows.Close()

	envelopes, err := scanEnvelopes(rows)
	if err != nil {
		return nil, 0, err
	}
	return envelopes, total, nil
}

// All returns every envelope in the corpus in (account, capture) order.
func (r *CorpusRepo) All(ctx context.Context) ([]domain.Envelope, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT body FROM corpus_envelopes ORDER BY account_id, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query corpus: %w", err)
	}
	defer rows.Close()

	return scanEnvelopes(rows)
}

// AccountSummary aggregates one account in SQL. Unknown account yields
// (nil, nil).
func (r *CorpusRepo) AccountSummary(ctx context.Context, accountID string) (*ports.AccountSummary, error) {
	query := `SELECT COUNT(*),
		COALESCE(SUM(jsonb_array_length(COALESCE(body->'payload'->'pending', '[]'::jsonb))), 0),
		COALESCE(SUM(jsonb_array_length(COALESCE(body->'payload'->'booked', '[]'::jsonb))), 0),
		COALESCE(MIN(created_at), ''),
		COALESCE(MAX(created_at), '')
		FROM corpus_envelopes WHERE account_id = $1`

	summary := ports.AccountSummary{AccountID: accountID}
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&summary.TotalRecords,
		&summary.PendingTotal,
		&summary.BookedTotal,
		&summary.FirstTransaction,
		&summary.LastTransaction,
	)
	if err != nil {
		return nil, fmt.Errorf("query account summary: %w", err)
	}
	if summary.TotalRecords == 0 {
		return nil, nil
	}
	return &summary, nil
}

// Stats aggregates the whole corpus in SQL.
func (r *CorpusRepo) Stats(ctx context.Context) (*ports.CorpusStats, error) {
	query := `SELECT COUNT(DISTINCT account_id), COUNT(*),
		COALESCE(SUM(jsonb_array_length(COALESCE(body->'payload'->'pending', '[]'::jsonb))), 0),
		COALESCE(SUM(jsonb_array_length(COALESCE(body->'payload'->'booked', '[]'::jsonb))), 0)
		FROM corpus_envelopes`

	var stats ports.CorpusStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalAccounts,
		&stats.TotalEnvelopes,
		&stats.PendingTotal,
		&stats.BookedTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("query corpus stats: %w", err)
	}
	return &stats, nil
}

// ReplaceCorpus atomically swaps the stored corpus for the given envelopes.
// Runs in one transaction so readers never observe a half-published corpus.
func (r *CorpusRepo) ReplaceCorpus(ctx context.Context, envelopes []domain.Envelope) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin publish: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM corpus_envelopes`); err != nil {
		return fmt.Errorf("clear corpus: %w", err)
	}

	for _, env := range envelopes {
		body, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("encode envelope: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO corpus_envelopes (account_id, created_at, body) VALUES ($1, $2, $3)`,
			env.Metadata.AccountID, env.Metadata.CreatedAt, body)
		if err != nil {
			return fmt.Errorf("insert envelope: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit publish: %w", err)
	}
	return nil
}

type envelopeRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEnvelopes(rows envelopeRows) ([]domain.Envelope, error) {
	var envelopes []domain.Envelope
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan envelope: %w", err)
		}
		var env domain.Envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode envelope: %w", err)
		}
		envelopes = append(envelopes, env)
	}
	return envelopes, rows.Err()
}
