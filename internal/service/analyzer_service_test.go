package service

import (
	"testing"

	"transaction-anonymizer/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(account, createdAt string, pending, booked []domain.Record) domain.Envelope {
	return domain.Envelope{
		Metadata: domain.Metadata{AccountID: account, CreatedAt: createdAt},
		Payload:  domain.Payload{Pending: pending, Booked: booked},
	}
}

func rec(id string) domain.Record {
	return domain.Record{domain.FieldTransactionID: id}
}

func TestAnalyzer_PendingToBookedTransition(t *testing.T) {
	a := NewRelationshipAnalyzer()

	report := a.Analyze([]domain.Envelope{
		envelope("A1", "2024-03-01T10:00:00Z", []domain.Record{rec("T1")}, nil),
		envelope("A1", "2024-03-01T11:00:00Z", nil, []domain.Record{rec("T1")}),
	})

	require.Len(t, report.PendingToBooked, 1)
	tr := report.PendingToBooked[0]
	assert.Equal(t, "A1", tr.AccountID)
	assert.Equal(t, domain.DeriveKey(rec("T1")), tr.TransactionKey)
	assert.Equal(t, "2024-03-01T10:00:00Z", tr.PendingFirstSeen)
	assert.Equal(t, "2024-03-01T11:00:00Z", tr.BookedFirstSeen)
	assert.Equal(t, 1, tr.PendingCount)
	assert.Equal(t, 1, tr.BookedCount)
}

func TestAnalyzer_BookedBeforePendingIsNotATransition(t *testing.T) {
	a := NewRelationshipAnalyzer()

	report := a.Analyze([]domain.Envelope{
		envelope("A1", "2024-03-01T09:00:00Z", nil, []domain.Record{rec("T3")}),
		envelope("A1", "2024-03-01T10:00:00Z", []domain.Record{rec("T3")}, nil),
	})

	assert.Empty(t, report.PendingToBooked)
	// Two sightings of the same key are still a duplicate.
	require.Len(t, report.Duplicates, 0, "sightings split across states do not merge counts")
}

func TestAnalyzer_SameCaptureCountsAsTransition(t *testing.T) {
	a := NewRelationshipAnalyzer()

	report := a.Analyze([]domain.Envelope{
		envelope("A1", "2024-03-01T10:00:00Z",
			[]domain.Record{rec("T1")}, []domain.Record{rec("T1")}),
	})

	require.Len(t, report.PendingToBooked, 1)
	assert.Equal(t, report.PendingToBooked[0].PendingFirstSeen, report.PendingToBooked[0].BookedFirstSeen)
}

func TestAnalyzer_DuplicateSightings(t *testing.T) {
	a := NewRelationshipAnalyzer()

	report := a.Analyze([]domain.Envelope{
		envelope("A2", "2024-03-01T10:00:00Z", nil, []domain.Record{rec("T2")}),
		envelope("A2", "2024-03-01T11:00:00Z", nil, []domain.Record{rec("T2")}),
		envelope("A2", "2024-03-01T12:00:00Z", nil, []domain.Record{rec("T2")}),
	})

	require.Len(t, report.Duplicates, 1)
	d := report.Duplicates[0]
	assert.Equal(t, "A2", d.AccountID)
	assert.Equal(t, 3, d.OccurrenceCount)
	assert.Equal(t, []string{
		"2024-03-01T10:00:00Z",
		"2024-03-01T11:00:00Z",
		"2024-03-01T12:00:00Z",
	}, d.Timestamps)
}

func TestAnalyzer_BookedSightingsShadowPendingInDuplicates(t *testing.T) {
	a := NewRelationshipAnalyzer()

	report := a.Analyze([]domain.Envelope{
		envelope("A1", "2024-03-01T10:00:00Z", []domain.Record{rec("T1")}, nil),
		envelope("A1", "2024-03-01T11:00:00Z", []domain.Record{rec("T1")}, nil),
		envelope("A1", "2024-03-01T12:00:00Z", nil, []domain.Record{rec("T1")}),
		envelope("A1", "2024-03-01T13:00:00Z", nil, []domain.Record{rec("T1")}),
	})

	// The key was sighted four times, but the duplicate entry reports the
	// booked occurrences only.
	require.Len(t, report.Duplicates, 1)
	assert.Equal(t, 2, report.Duplicates[0].OccurrenceCount)
	assert.Equal(t, []string{
		"2024-03-01T12:00:00Z",
		"2024-03-01T13:00:00Z",
	}, report.Duplicates[0].Timestamps)

	require.Len(t, report.PendingToBooked, 1)
	assert.Equal(t, 2, report.PendingToBooked[0].PendingCount)
	assert.Equal(t, 2, report.PendingToBooked[0].BookedCount)
}

func TestAnalyzer_AccountsAreIndependent(t *testing.T) {
	a := NewRelationshipAnalyzer()

	report := a.Analyze([]domain.Envelope{
		envelope("A1", "2024-03-01T10:00:00Z", []domain.Record{rec("T1")}, nil),
		envelope("A2", "2024-03-01T11:00:00Z", nil, []domain.Record{rec("T1")}),
	})

	assert.Empty(t, report.PendingToBooked, "same key in different accounts is no relationship")
	assert.Empty(t, report.Duplicates)
}

func TestAnalyzer_OutputOrderIsDeterministic(t *testing.T) {
	a := NewRelationshipAnalyzer()

	// Shuffled input: accounts and keys out of order.
	envelopes := []domain.Envelope{
		envelope("B", "2024-03-01T10:00:00Z", nil, []domain.Record{rec("T9"), rec("T9")}),
		envelope("A", "2024-03-01T10:00:00Z", nil, []domain.Record{rec("T5"), rec("T5")}),
		envelope("A", "2024-03-01T09:00:00Z", nil, []domain.Record{rec("T1"), rec("T1")}),
	}

	first := a.Analyze(envelopes)
	second := a.Analyze(envelopes)
	assert.Equal(t, first, second)

	require.Len(t, first.Duplicates, 3)
	assert.Equal(t, "A", first.Duplicates[0].AccountID)
	assert.Equal(t, "A", first.Duplicates[1].AccountID)
	assert.Equal(t, "B", first.Duplicates[2].AccountID)
	assert.Less(t, first.Duplicates[0].TransactionKey, first.Duplicates[1].TransactionKey)
}

func TestAnalyzer_UnsortedCapturesAreOrderedByTimestamp(t *testing.T) {
	a := NewRelationshipAnalyzer()

	// Booked capture arrives first in the slice but is chronologically later.
	report := a.Analyze([]domain.Envelope{
		envelope("A1", "2024-03-01T11:00:00Z", nil, []domain.Record{rec("T1")}),
		envelope("A1", "2024-03-01T10:00:00Z", []domain.Record{rec("T1")}, nil),
	})

	require.Len(t, report.PendingToBooked, 1)
	assert.Equal(t, "2024-03-01T10:00:00Z", report.PendingToBooked[0].PendingFirstSeen)
}

func TestAnalyzer_EmptyCorpus(t *testing.T) {
	a := NewRelationshipAnalyzer()

	report := a.Analyze(nil)
	assert.Empty(t, report.PendingToBooked)
	assert.Empty(t, report.Duplicates)
}
