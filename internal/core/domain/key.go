package domain

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// DeriveKey computes the identity key of a transaction: a deterministic
// fingerprint of its identifying content, independent of pending/booked state.
// Present identifying fields contribute one name:value token each, in priority
// order; a record with none of them falls back to a content hash over its
// canonical (sorted-key) JSON form.
//
// The key is derived before and after pseudonymization so that relationship
// knowledge survives substitution, and the analyzer groups sightings by it.
// It must therefore stay total and must never fail: a malformed record still
// gets a key.
func DeriveKey(r Record) string {
	parts := make([]string, 0, 4)

	if id, ok := r.StringField(FieldTransactionID); ok {
		parts = append(parts, "id:"+id)
	}
	if amount, currency, ok := r.Amount(); ok {
		parts = append(parts, fmt.Sprintf("amount:%s:%s", amount, currency))
	}
	if date, ok := r.StringField(FieldBookingDate); ok {
		parts = append(parts, "date:"+date)
	}
	if name, ok := r.StringField(FieldCreditorName); ok {
		parts = append(parts, "creditor:"+name)
	}

	if len(parts) == 0 {
		return "hash:" + contentHash(r)
	}
	return strings.Join(parts, "|")
}

// contentHash hashes the whole record in a field-order-independent way.
// encoding/json emits map keys sorted, which gives us the canonical form.
func contentHash(r Record) string {
	data, err := json.Marshal(r)
	if err != nil {
		// Records come from decoded JSON, so this cannot happen in practice;
		// fall back to something stable rather than panic.
		data = []byte(fmt.Sprintf("%v", r))
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
