package memory

import (
	"context"
	"testing"

	"transaction-anonymizer/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(account, createdAt string, pending, booked int) domain.Envelope {
	e := domain.Envelope{
		Metadata: domain.Metadata{AccountID: account, CreatedAt: createdAt},
	}
	for i := 0; i < pending; i++ {
		e.Payload.Pending = append(e.Payload.Pending, domain.Record{domain.FieldTransactionID: "P"})
	}
	for i := 0; i < booked; i++ {
		e.Payload.Booked = append(e.Payload.Booked, domain.Record{domain.FieldTransactionID: "B"})
	}
	return e
}

func testCorpus() []domain.Envelope {
	return []domain.Envelope{
		env("b-acct", "2024-03-02T10:00:00Z", 1, 2),
		env("a-acct", "2024-03-01T12:00:00Z", 0, 3),
		env("a-acct", "2024-03-01T09:00:00Z", 2, 0),
		env("a-acct", "2024-03-03T08:00:00Z", 0, 1),
	}
}

func TestCorpusRepository_AccountIDs(t *testing.T) {
	r := New(testCorpus())

	ids, err := r.AccountIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a-acct", "b-acct"}, ids)
}

func TestCorpusRepository_ByAccount_OrderedByCapture(t *testing.T) {
	r := New(testCorpus())

	page, total, err := r.ByAccount(context.Background(), "a-acct", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 3)
	assert.Equal(t, "2024-03-01T09:00:00Z", page[0].Metadata.CreatedAt)
	assert.Equal(t, "2024-03-03T08:00:00Z", page[2].Metadata.CreatedAt)
}

func TestCorpusRepository_ByAccount_Paging(t *testing.T) {
	r := New(testCorpus())

	page, total, err := r.ByAccount(context.Background(), "a-acct", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "2024-03-01T12:00:00Z", page[0].Metadata.CreatedAt)

	// Offset past the end yields an empty page but the real total.
	page, total, err = r.ByAccount(context.Background(), "a-acct", 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestCorpusRepository_ByAccount_Unknown(t *testing.T) {
	r := New(testCorpus())

	page, total, err := r.ByAccount(context.Background(), "nope", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Nil(t, page)
}

func TestCorpusRepository_AccountSummary(t *testing.T) {
	r := New(testCorpus())

	summary, err := r.AccountSummary(context.Background(), "a-acct")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "a-acct", summary.AccountID)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 2, summary.PendingTotal)
	assert.Equal(t, 4, summary.BookedTotal)
	assert.Equal(t, "2024-03-01T09:00:00Z", summary.FirstTransaction)
	assert.Equal(t, "2024-03-03T08:00:00Z", summary.LastTransaction)
}

func TestCorpusRepository_AccountSummary_Unknown(t *testing.T) {
	r := New(testCorpus())

	summary, err := r.AccountSummary(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestCorpusRepository_Stats(t *testing.T) {
	r := New(testCorpus())

	stats, err := r.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAccounts)
	assert.Equal(t, 4, stats.TotalEnvelopes)
	assert.Equal(t, 3, stats.PendingTotal)
	assert.Equal(t, 6, stats.BookedTotal)
}

func TestCorpusRepository_EmptyCorpus(t *testing.T) {
	r := New(nil)

	ids, err := r.AccountIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)

	stats, err := r.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalEnvelopes)
}
