package domain

import "errors"

// ErrMissingAccountID marks an envelope whose metadata carries no account
// identifier. Such envelopes cannot be keyed or anonymized and are skipped by
// the pipeline, surfaced as anomalies.
var ErrMissingAccountID = errors.New("envelope missing account id")
