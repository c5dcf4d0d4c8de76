// Package memory serves an anonymized corpus loaded whole into process memory.
// This is the default backend: the corpus is read-only at serve time, so one
// upfront index pass buys lock-free request handling.
package memory

import (
	"context"
	"sort"

	"transaction-anonymizer/internal/core/domain"
	"transaction-anonymizer/internal/core/ports"
)

// CorpusRepository indexes envelopes by account at construction time. Safe for
// concurrent use: all state is immutable after New.
type CorpusRepository struct {
	byAccount  map[string][]domain.Envelope
	accountIDs []string
	all        []domain.Envelope
}

var _ ports.CorpusRepository = (*CorpusRepository)(nil)

// New builds the in-memory index. Each account's envelopes are ordered by
// capture timestamp, ties keeping input order.
func New(envelopes []domain.Envelope) *CorpusRepository {
	r := &CorpusRepository{
		byAccount: make(map[string][]domain.Envelope),
		all:       envelopes,
	}
	for _, env := range envelopes {
		id := env.Metadata.AccountID
		r.byAccount[id] = append(r.byAccount[id], env)
	}
	for id, group := range r.byAccount {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Metadata.CreatedAt < group[j].Metadata.CreatedAt
		})
		r.accountIDs = append(r.accountIDs, id)
	}
	sort.Strings(r.accountIDs)
	return r
}

func (r *CorpusRepository) AccountIDs(_ context.Context) ([]string, error) {
	ids := make([]string, len(r.accountIDs))
	copy(ids, r.accountIDs)
	return ids, nil
}

func (r *CorpusRepository) ByAccount(_ context.Context, accountID string, offset, limit int) ([]domain.Envelope, int, error) {
	group, ok := r.byAccount[accountID]
	if !ok {
		return nil, 0, nil
	}
	total := len(group)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]domain.Envelope, end-offset)
	copy(page, group[offset:end])
	return page, total, nil
}

func (r *CorpusRepository) All(_ context.Context) ([]domain.Envelope, error) {
	all := make([]domain.Envelope, len(r.all))
	copy(all, r.all)
	return all, nil
}

func (r *CorpusRepository) AccountSummary(_ context.Context, accountID string) (*ports.AccountSummary, error) {
	group, ok := r.byAccount[accountID]
	if !ok {
		return nil, nil
	}
	summary := &ports.AccountSummary{AccountID: accountID, TotalRecords: len(group)}
	for _, env := range group {
		summary.PendingTotal += len(env.Payload.Pending)
		summary.BookedTotal += len(env.Payload.Booked)
	}
	if len(group) > 0 {
		summary.FirstTransaction = group[0].Metadata.CreatedAt
		summary.LastTransaction = group[len(group)-1].Metadata.CreatedAt
	}
	return summary, nil
}

func (r *CorpusRepository) Stats(_ context.Context) (*ports.CorpusStats, error) {
	stats := &ports.CorpusStats{
		TotalAccounts:  len(r.accountIDs),
		TotalEnvelopes: len(r.all),
	}
	for _, env := range r.all {
		stats.PendingTotal += len(env.Payload.Pending)
		stats.BookedTotal += len(env.Payload.Booked)
	}
	return stats, nil
}
