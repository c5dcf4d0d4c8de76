package service

import (
	"context"

	"transaction-anonymizer/internal/core/domain"
	"transaction-anonymizer/internal/core/ports"
	"transaction-anonymizer/pkg/apperror"
)

// corpusService implements ports.CorpusService over a corpus repository.
type corpusService struct {
	repo     ports.CorpusRepository
	analyzer ports.Analyzer
}

// NewCorpusService creates the read-side service the API serves from.
func NewCorpusService(repo ports.CorpusRepository, analyzer ports.Analyzer) ports.CorpusService {
	return &corpusService{repo: repo, analyzer: analyzer}
}

// Accounts returns every account id in the corpus, sorted.
func (s *corpusService) Accounts(ctx context.Context) ([]string, error) {
	ids, err := s.repo.AccountIDs(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if len(ids) == 0 {
		return nil, apperror.ErrCorpusUnavailable()
	}
	return ids, nil
}

// AccountEnvelopes returns one page of the account's envelopes, ordered by
// capture timestamp, plus the total count. page is 1-based.
func (s *corpusService) AccountEnvelopes(ctx context.Context, accountID string, page, perPage int) ([]domain.Envelope, int, error) {
	offset := (page - 1) * perPage
	envelopes, total, err := s.repo.ByAccount(ctx, accountID, offset, perPage)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	if total == 0 {
		return nil, 0, apperror.ErrAccountNotFound(accountID)
	}
	if offset >= total {
		return nil, 0, apperror.ErrPageBeyondData(page)
	}
	return envelopes, total, nil
}

// AccountSummary aggregates one account's snapshots.
func (s *corpusService) AccountSummary(ctx context.Context, accountID string) (*ports.AccountSummary, error) {
	summary, err := s.repo.AccountSummary(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if summary == nil {
		return nil, apperror.ErrAccountNotFound(accountID)
	}
	return summary, nil
}

// Stats aggregates the whole corpus.
func (s *corpusService) Stats(ctx context.Context) (*ports.CorpusStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return stats, nil
}

// Relationships runs the analyzer over the served corpus on demand.
func (s *corpusService) Relationships(ctx context.Context) (*domain.RelationshipReport, error) {
	envelopes, err := s.repo.All(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	report := s.analyzer.Analyze(envelopes)
	return &report, nil
}
