package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Amount(t *testing.T) {
	rec := Record{
		FieldTransactionAmount: map[string]any{FieldAmount: "-3.20", FieldCurrency: "GBP"},
	}

	amount, currency, ok := rec.Amount()
	require.True(t, ok)
	assert.Equal(t, "-3.20", amount)
	assert.Equal(t, "GBP", currency)
}

func TestRecord_AmountAbsent(t *testing.T) {
	_, _, ok := Record{FieldBookingDate: "2024-01-01"}.Amount()
	assert.False(t, ok)
}

func TestRecord_AmountWrongShape(t *testing.T) {
	_, _, ok := Record{FieldTransactionAmount: "12.00"}.Amount()
	assert.False(t, ok)
}

func TestRecord_CloneIsDeep(t *testing.T) {
	rec := Record{
		FieldTransactionAmount: map[string]any{FieldAmount: "1.00", FieldCurrency: "GBP"},
		"tags":                 []any{"a", "b"},
	}

	cp := rec.Clone()
	cp[FieldTransactionAmount].(map[string]any)[FieldAmount] = "9.99"
	cp["tags"].([]any)[0] = "z"

	assert.Equal(t, "1.00", rec[FieldTransactionAmount].(map[string]any)[FieldAmount])
	assert.Equal(t, "a", rec["tags"].([]any)[0])
}

func TestEnvelope_Validate(t *testing.T) {
	env := Envelope{Metadata: Metadata{AccountID: "acc-1", CreatedAt: "2024-01-01T10:00:00Z"}}
	assert.NoError(t, env.Validate())

	env.Metadata.AccountID = ""
	assert.ErrorIs(t, env.Validate(), ErrMissingAccountID)
}
