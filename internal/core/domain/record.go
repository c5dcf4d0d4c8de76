package domain

// Known transaction record fields. Records carry arbitrary additional fields
// which survive anonymization untouched.
const (
	FieldTransactionID     = "transactionId"
	FieldTransactionAmount = "transactionAmount"
	FieldBookingDate       = "bookingDate"
	FieldCreditorName      = "creditorName"
	FieldDebtorName        = "debtorName"
	FieldRemittanceInfo    = "remittanceInformationUnstructured"
	FieldAdditionalInfo    = "additionalInformation"
	FieldEntryReference    = "entryReference"
	FieldInternalID        = "internalTransactionId"

	// Sub-fields of transactionAmount.
	FieldAmount   = "amount"
	FieldCurrency = "currency"
)

// Record is a single transaction as captured from a banking provider: a flat
// JSON object whose field set varies per provider. Whether the transaction is
// pending or booked is structural (which Payload list it sits in), never a
// field of the record itself.
type Record map[string]any

// StringField returns the named field if present and a string.
func (r Record) StringField(name string) (string, bool) {
	v, ok := r[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Amount returns the decimal-as-text amount and currency code from the nested
// transactionAmount object, if present.
func (r Record) Amount() (amount, currency string, ok bool) {
	v, ok := r[FieldTransactionAmount]
	if !ok {
		return "", "", false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return "", "", false
	}
	amount, _ = m[FieldAmount].(string)
	currency, _ = m[FieldCurrency].(string)
	return amount, currency, true
}

// Clone returns a deep copy. Anonymization never mutates its input.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}

// Metadata identifies one captured snapshot: which account it belongs to and
// when it was fetched. CreatedAt is kept as the provider's RFC 3339 text so
// snapshot ordering is a plain string comparison.
type Metadata struct {
	AccountID     string  `json:"accountId"`
	CreatedAt     string  `json:"createdAt"`
	RequisitionID *string `json:"requisitionId,omitempty"`
	TraceID       *string `json:"traceId,omitempty"`
}

// Payload partitions a snapshot's transactions by lifecycle state.
type Payload struct {
	Pending []Record `json:"pending"`
	Booked  []Record `json:"booked"`
}

// Envelope is one captured snapshot of an account's transactions. The same
// underlying transaction may appear in many envelopes across re-fetches, and
// may move between the pending and booked lists over time.
type Envelope struct {
	Metadata Metadata `json:"metadata"`
	Payload  Payload  `json:"payload"`
}

// Validate reports whether the envelope is structurally usable. The identity
// model and account-level substitution both require an account identifier.
func (e *Envelope) Validate() error {
	if e.Metadata.AccountID == "" {
		return ErrMissingAccountID
	}
	return nil
}
