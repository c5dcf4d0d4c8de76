package service

import (
	"sort"

	"transaction-anonymizer/internal/core/domain"
	"transaction-anonymizer/internal/core/ports"
)

// sighting is one observation of an identity key at a capture timestamp.
type sighting struct {
	key       string
	timestamp string
}

// RelationshipAnalyzer detects pending -> booked transitions and duplicate
// sightings across overlapping snapshots. It is read-only over the corpus and
// stateless between calls; every account is analyzed independently.
type RelationshipAnalyzer struct{}

var _ ports.Analyzer = (*RelationshipAnalyzer)(nil)

// NewRelationshipAnalyzer creates an analyzer.
func NewRelationshipAnalyzer() *RelationshipAnalyzer {
	return &RelationshipAnalyzer{}
}

// Analyze groups every sighting by account and identity key, then reports:
//
//   - a transition for each key seen both pending and booked in one account,
//     provided the earliest pending sighting is no later than the earliest
//     booked one (a booked-before-pending key is not a transition);
//   - a duplicate for each key sighted more than once, with all timestamps.
//
// Output is sorted by (account id, key) so two runs over the same corpus are
// byte-identical.
func (ra *RelationshipAnalyzer) Analyze(envelopes []domain.Envelope) domain.RelationshipReport {
	byAccount := make(map[string][]domain.Envelope)
	for _, env := range envelopes {
		byAccount[env.Metadata.AccountID] = append(byAccount[env.Metadata.AccountID], env)
	}

	accountIDs := make([]string, 0, len(byAccount))
	for id := range byAccount {
		accountIDs = append(accountIDs, id)
	}
	sort.Strings(accountIDs)

	var report domain.RelationshipReport
	for _, accountID := range accountIDs {
		ra.analyzeAccount(accountID, byAccount[accountID], &report)
	}
	return report
}

func (ra *RelationshipAnalyzer) analyzeAccount(accountID string, envelopes []domain.Envelope, report *domain.RelationshipReport) {
	// Chronological processing; stable so equal timestamps keep input order.
	sort.SliceStable(envelopes, func(i, j int) bool {
		return envelopes[i].Metadata.CreatedAt < envelopes[j].Metadata.CreatedAt
	})

	pending := make(map[string][]string) // key -> capture timestamps
	booked := make(map[string][]string)
	for _, env := range envelopes {
		ts := env.Metadata.CreatedAt
		for _, rec := range env.Payload.Pending {
			k := domain.DeriveKey(rec)
			pending[k] = append(pending[k], ts)
		}
		for _, rec := range env.Payload.Booked {
			k := domain.DeriveKey(rec)
			booked[k] = append(booked[k], ts)
		}
	}

	// Transitions: key sighted in both states, pending first (or same
	// capture). Heuristic evidence only, not a proven causal link.
	transitionKeys := make([]string, 0)
	for k := range pending {
		if _, ok := booked[k]; ok {
			transitionKeys = append(transitionKeys, k)
		}
	}
	sort.Strings(transitionKeys)
	for _, k := range transitionKeys {
		earliestPending := pending[k][0] // timestamps appended in ascending order
		earliestBooked := booked[k][0]
		if earliestPending > earliestBooked {
			continue
		}
		report.PendingToBooked = append(report.PendingToBooked, domain.Transition{
			AccountID:        accountID,
			TransactionKey:   k,
			PendingFirstSeen: earliestPending,
			BookedFirstSeen:  earliestBooked,
			PendingCount:     len(pending[k]),
			BookedCount:      len(booked[k]),
		})
	}

	// Duplicates: any key sighted more than once. A key present in both
	// states reports its booked sightings only (booked shadows pending).
	merged := make(map[string][]string, len(pending)+len(booked))
	for k, ts := range pending {
		merged[k] = ts
	}
	for k, ts := range booked {
		merged[k] = ts
	}

	dupKeys := make([]string, 0)
	for k, ts := range merged {
		if len(ts) > 1 {
			dupKeys = append(dupKeys, k)
		}
	}
	sort.Strings(dupKeys)
	for _, k := range dupKeys {
		timestamps := make([]string, len(merged[k]))
		copy(timestamps, merged[k])
		report.Duplicates = append(report.Duplicates, domain.Duplicate{
			AccountID:       accountID,
			TransactionKey:  k,
			OccurrenceCount: len(timestamps),
			Timestamps:      timestamps,
		})
	}
}
