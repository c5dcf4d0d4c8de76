package service

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// seededDigest is the single hash primitive behind every deterministic pick:
// a BLAKE2b MAC keyed with the run seed, so the same seed and input always
// produce the same bytes on every platform, and different seeds produce
// unrelated substitution universes.
type seededDigest struct {
	key [8]byte
}

func newSeededDigest(seed uint64) seededDigest {
	var d seededDigest
	binary.BigEndian.PutUint64(d.key[:], seed)
	return d
}

// sum returns the full 64-byte digest of s.
func (d seededDigest) sum(s string) [blake2b.Size]byte {
	h, err := blake2b.New512(d.key[:])
	if err != nil {
		// Only reachable with an oversized key; ours is fixed at 8 bytes.
		panic(err)
	}
	h.Write([]byte(s))
	var out [blake2b.Size]byte
	h.Sum(out[:0])
	return out
}

// uint64 derives an unsigned selector value from s. Catalogue picks take this
// modulo the catalogue size; decorrelated second picks divide first
// (e.g. (v/100) mod m) so one digest feeds multiple unrelated choices.
func (d seededDigest) uint64(s string) uint64 {
	sum := d.sum(s)
	return binary.BigEndian.Uint64(sum[:8])
}

// hexn returns the first n hex characters of the digest of s (n <= 128).
func (d seededDigest) hexn(s string, n int) string {
	sum := d.sum(s)
	return hex.EncodeToString(sum[:])[:n]
}
