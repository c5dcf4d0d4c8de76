package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"transaction-anonymizer/internal/core/domain"
	"transaction-anonymizer/internal/core/ports"

	"github.com/google/uuid"
)

// DefaultSeed and DefaultVariance match the published corpus.
const (
	DefaultSeed     uint64  = 42
	DefaultVariance float64 = 0.1
)

var (
	// Bank-account-shaped token (IBAN-style prefix): country code, check
	// digits, start of the BBAN.
	accountNumberRe = regexp.MustCompile(`[A-Z]{2}\d{2}[A-Z0-9]{4}`)
	digitRunRe      = regexp.MustCompile(`\d{4}`)
)

// accountNumberPlaceholder replaces any bank-account-shaped token found in a
// free-text reference. One fixed value for the whole corpus: account numbers
// carry no relationship information worth preserving.
const accountNumberPlaceholder = "GB29FAKE0123456789"

// referenceRule is one guarded rewrite for free-text references. Rules are
// evaluated in fixed order and exactly one fires.
type referenceRule struct {
	match func(ref string) bool
	apply func(ref string) string
}

// Anonymizer deterministically substitutes sensitive values with realistic
// fakes. All caches are owned exclusively by one instance and grow
// monotonically for the lifetime of one run: a repeated original value always
// resolves to the fake generated at first sight.
//
// Not safe for concurrent use. Parallel runs must either own separate
// instances or guard one instance externally.
type Anonymizer struct {
	digest   seededDigest
	variance float64

	accountIDs map[string]string
	creditors  map[string]string
	references map[string]string
	txnIDs     map[string]string
	keyMap     map[string]string // DeriveKey(original) -> DeriveKey(anonymized)
	refRules   []referenceRule
}

var _ ports.Anonymizer = (*Anonymizer)(nil)

// NewAnonymizer creates an engine for one anonymization run. The seed controls
// every hash-derived selection; equal seed and input mean byte-identical
// output. variance bounds the relative amount jitter (0.1 = ±10%).
func NewAnonymizer(seed uint64, variance float64) *Anonymizer {
	a := &Anonymizer{
		digest:     newSeededDigest(seed),
		variance:   variance,
		accountIDs: make(map[string]string),
		creditors:  make(map[string]string),
		references: make(map[string]string),
		txnIDs:     make(map[string]string),
		keyMap:     make(map[string]string),
	}
	a.refRules = []referenceRule{
		{
			// Titled personal name (Mr/Mrs/Miss/Ms) -> synthetic person.
			match: func(ref string) bool {
				up := strings.ToUpper(ref)
				for _, title := range []string{"MR ", "MRS ", "MISS ", "MS "} {
					if strings.Contains(up, title) {
						return true
					}
				}
				return false
			},
			apply: a.PersonalName,
		},
		{
			match: accountNumberRe.MatchString,
			apply: func(ref string) string {
				return accountNumberRe.ReplaceAllString(ref, accountNumberPlaceholder)
			},
		},
		{
			// Card-style 4-digit run: rewrite the first run only, keeping the
			// surrounding text.
			match: digitRunRe.MatchString,
			apply: func(ref string) string {
				fake := fmt.Sprintf("%04d", a.digest.uint64(ref)%10000)
				loc := digitRunRe.FindStringIndex(ref)
				return ref[:loc[0]] + fake + ref[loc[1]:]
			},
		},
		{
			match: func(string) bool { return true },
			apply: func(ref string) string {
				h := a.digest.uint64(ref)
				pattern := referencePatterns[h%uint64(len(referencePatterns))]
				return fmt.Sprintf(pattern, h%100000000)
			},
		},
	}
	return a
}

// AccountID maps an account identifier to a stable fake UUID. The digest bytes
// are reshaped into an RFC 4122 v4-looking value so the output has the
// syntactic shape of any other account id.
func (a *Anonymizer) AccountID(original string) string {
	if fake, ok := a.accountIDs[original]; ok {
		return fake
	}
	sum := a.digest.sum(original)
	var raw [16]byte
	copy(raw[:], sum[:16])
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80
	id, _ := uuid.FromBytes(raw[:])
	fake := id.String()
	a.accountIDs[original] = fake
	return fake
}

// TransactionID regenerates a fake identifier of the same shape class as the
// original: known prefixes keep their prefix and suffix length, long opaque
// tokens stay 64 hex characters, anything else becomes a generic TXN token.
func (a *Anonymizer) TransactionID(original string) string {
	if fake, ok := a.txnIDs[original]; ok {
		return fake
	}

	var fake string
	switch {
	case strings.HasPrefix(original, "tx_"):
		fake = "tx_" + a.digest.hexn(original, 20)
	case strings.HasPrefix(original, "T"):
		fake = "T" + a.digest.hexn(original, 31)
	case len(original) > 50:
		fake = a.digest.hexn(original, 64)
	default:
		fake = "TXN" + a.digest.hexn(original, 16)
	}

	a.txnIDs[original] = fake
	return fake
}

// CreditorName substitutes a counterparty with a catalogue merchant. If the
// original contains a recognisable city token, a hash-picked fake city is
// appended so the "has a location suffix" structure survives without the real
// location.
func (a *Anonymizer) CreditorName(original string) string {
	if original == "" {
		return original
	}
	if fake, ok := a.creditors[original]; ok {
		return fake
	}

	h := a.digest.uint64(original)
	fake := fakeMerchants[h%uint64(len(fakeMerchants))]

	up := strings.ToUpper(original)
	for _, city := range cityTokens {
		if strings.Contains(up, city) {
			fake = fake + " " + fakeCities[(h/7)%uint64(len(fakeCities))]
			break
		}
	}

	a.creditors[original] = fake
	return fake
}

// PersonalName synthesises a fake "FIRST SURNAME" pair. The two indices come
// from different slices of one digest so the picks are decorrelated. Pure:
// no cache needed, the digest alone makes it stable.
func (a *Anonymizer) PersonalName(original string) string {
	if original == "" {
		return original
	}
	h := a.digest.uint64(original)
	first := firstNames[h%uint64(len(firstNames))]
	sur := surnames[(h/100)%uint64(len(surnames))]
	return first + " " + sur
}

// Reference rewrites a free-text reference through the first matching rule:
// titled personal name, bank-account-shaped token, 4-digit run, generic.
func (a *Anonymizer) Reference(original string) string {
	if original == "" {
		return original
	}
	if fake, ok := a.references[original]; ok {
		return fake
	}

	var fake string
	for _, rule := range a.refRules {
		if rule.match(original) {
			fake = rule.apply(original)
			break
		}
	}

	a.references[original] = fake
	return fake
}

// Amount multiplies a decimal-as-text amount by (1 + jitter), jitter hash
// derived in [-variance, +variance) per distinct input string. An unparsable
// amount passes through unchanged; that is degradation, not an error.
func (a *Anonymizer) Amount(original string) string {
	amount, err := strconv.ParseFloat(original, 64)
	if err != nil {
		return original
	}

	h := a.digest.uint64(original)
	jitter := float64(h%1000)/1000.0*a.variance*2 - a.variance
	return fmt.Sprintf("%.2f", amount*(1+jitter))
}

// InternalID replaces an internal correlation identifier with a 32-hex digest
// of the original. Deterministic, so re-fetched snapshots keep matching.
func (a *Anonymizer) InternalID(original string) string {
	return a.digest.hexn(original, 32)
}

// AnonymizeTransaction substitutes the sensitive fields of one record. Fields
// absent in the input stay absent; unknown fields pass through verbatim. The
// identity-key correspondence (before -> after) is recorded so relationship
// tracking survives the rewrite.
func (a *Anonymizer) AnonymizeTransaction(rec domain.Record) domain.Record {
	originalKey := domain.DeriveKey(rec)
	out := rec.Clone()

	if id, ok := out.StringField(domain.FieldTransactionID); ok {
		out[domain.FieldTransactionID] = a.TransactionID(id)
	}
	if name, ok := out.StringField(domain.FieldCreditorName); ok {
		out[domain.FieldCreditorName] = a.CreditorName(name)
	}
	if name, ok := out.StringField(domain.FieldDebtorName); ok {
		out[domain.FieldDebtorName] = a.PersonalName(name)
	}
	for _, field := range []string{
		domain.FieldRemittanceInfo,
		domain.FieldAdditionalInfo,
		domain.FieldEntryReference,
	} {
		if ref, ok := out.StringField(field); ok {
			out[field] = a.Reference(ref)
		}
	}
	if ta, ok := out[domain.FieldTransactionAmount].(map[string]any); ok {
		if amount, ok := ta[domain.FieldAmount].(string); ok {
			ta[domain.FieldAmount] = a.Amount(amount)
		}
	}
	if id, ok := out.StringField(domain.FieldInternalID); ok {
		out[domain.FieldInternalID] = a.InternalID(id)
	}

	a.keyMap[originalKey] = domain.DeriveKey(out)
	return out
}

// AnonymizeEnvelope rewrites one snapshot: the account id is substituted once
// in the header, volatile correlation ids are regenerated as fresh random
// values (they carry no cross-snapshot identity), and every transaction is
// anonymized in place of its original, preserving list order and the
// pending/booked partition.
func (a *Anonymizer) AnonymizeEnvelope(env domain.Envelope) (domain.Envelope, error) {
	if err := env.Validate(); err != nil {
		return domain.Envelope{}, err
	}

	out := domain.Envelope{
		Metadata: domain.Metadata{
			AccountID: a.AccountID(env.Metadata.AccountID),
			CreatedAt: env.Metadata.CreatedAt,
		},
	}
	if env.Metadata.RequisitionID != nil {
		fresh := uuid.NewString()
		out.Metadata.RequisitionID = &fresh
	}
	if env.Metadata.TraceID != nil {
		fresh := uuid.NewString()
		out.Metadata.TraceID = &fresh
	}

	if env.Payload.Pending != nil {
		out.Payload.Pending = make([]domain.Record, len(env.Payload.Pending))
		for i, rec := range env.Payload.Pending {
			out.Payload.Pending[i] = a.AnonymizeTransaction(rec)
		}
	}
	if env.Payload.Booked != nil {
		out.Payload.Booked = make([]domain.Record, len(env.Payload.Booked))
		for i, rec := range env.Payload.Booked {
			out.Payload.Booked[i] = a.AnonymizeTransaction(rec)
		}
	}

	return out, nil
}

// Mappings snapshots the run's substitution state: the account-id map, the
// key correspondence table and per-cache counts.
func (a *Anonymizer) Mappings() domain.MappingSnapshot {
	snap := domain.MappingSnapshot{
		AccountIDMap:      make(map[string]string, len(a.accountIDs)),
		KeyCorrespondence: make(map[string]string, len(a.keyMap)),
		Stats: domain.MappingStats{
			AccountsAnonymized:       len(a.accountIDs),
			CreditorsAnonymized:      len(a.creditors),
			ReferencesAnonymized:     len(a.references),
			TransactionIDsAnonymized: len(a.txnIDs),
			RelationshipsPreserved:   len(a.keyMap),
		},
	}
	for k, v := range a.accountIDs {
		snap.AccountIDMap[k] = v
	}
	for k, v := range a.keyMap {
		snap.KeyCorrespondence[k] = v
	}
	return snap
}

// CacheSizes reports the current size of each substitution cache, in the order
// accounts, creditors, references, transaction ids. Test hook for the
// idempotent-caching property.
func (a *Anonymizer) CacheSizes() [4]int {
	return [4]int{len(a.accountIDs), len(a.creditors), len(a.references), len(a.txnIDs)}
}
