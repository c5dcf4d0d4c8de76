package domain

// Transition records an observed pending -> booked state change: the same
// identity key sighted pending first and booked no earlier. This is the
// original heuristic, not a guaranteed causal link; with many-to-many
// sightings it can pair unrelated re-fetches that share a key.
type Transition struct {
	AccountID        string `json:"account_id"`
	TransactionKey   string `json:"transaction_key"`
	PendingFirstSeen string `json:"pending_first_seen"`
	BookedFirstSeen  string `json:"booked_first_seen"`
	PendingCount     int    `json:"pending_count"`
	BookedCount      int    `json:"booked_count"`
}

// Duplicate records an identity key sighted more than once within one account,
// with every capture timestamp at which it appeared.
type Duplicate struct {
	AccountID       string   `json:"account_id"`
	TransactionKey  string   `json:"transaction_key"`
	OccurrenceCount int      `json:"occurrence_count"`
	Timestamps      []string `json:"timestamps"`
}

// RelationshipReport is the analyzer's output over a raw or anonymized corpus.
type RelationshipReport struct {
	PendingToBooked []Transition `json:"pending_to_booked"`
	Duplicates      []Duplicate  `json:"duplicates"`
}

// MappingStats counts distinct original values substituted during one run.
type MappingStats struct {
	AccountsAnonymized       int `json:"accounts_anonymized"`
	CreditorsAnonymized      int `json:"creditors_anonymized"`
	ReferencesAnonymized     int `json:"references_anonymized"`
	TransactionIDsAnonymized int `json:"transaction_ids_anonymized"`
	RelationshipsPreserved   int `json:"transaction_relationships_preserved"`
}

// MappingSnapshot captures the substitution state of one anonymization run.
// KeyCorrespondence is total over every pre-anonymization key observed, so a
// relationship analysis of the anonymized corpus can be cross-checked against
// the original.
type MappingSnapshot struct {
	AccountIDMap      map[string]string `json:"account_id_map"`
	KeyCorrespondence map[string]string `json:"transaction_key_map"`
	Stats             MappingStats      `json:"anonymization_stats"`
}

// Anomaly reports an envelope the pipeline skipped rather than anonymized.
// Skips are never silent.
type Anomaly struct {
	EnvelopeIndex int    `json:"envelope_index"`
	AccountID     string `json:"account_id,omitempty"`
	Reason        string `json:"reason"`
}

// RunSummary describes one anonymization pipeline run.
type RunSummary struct {
	EnvelopesIn      int       `json:"envelopes_in"`
	EnvelopesSkipped int       `json:"envelopes_skipped"`
	PendingRecords   int       `json:"pending_records"`
	BookedRecords    int       `json:"booked_records"`
	Anomalies        []Anomaly `json:"anomalies,omitempty"`
}
