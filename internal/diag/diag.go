// Package diag provides debug-safe identifiers for the stateful components
// in this module (streams, RNGs) so operators can correlate log lines with
// a specific instance without ever logging the key itself.
package diag

import (
	"github.com/dchest/siphash"
	"github.com/google/uuid"
)

// fingerprintK0, fingerprintK1 are fixed, non-secret siphash keys. The
// fingerprint they produce is for log correlation only — it is keyed with
// public constants, not a secret, so it makes no confidentiality claim
// about the key it fingerprints.
const (
	fingerprintK0 = 0x636168616f736368
	fingerprintK1 = 0x6170686572696e74
)

// KeyFingerprint returns a short, non-reversible tag derived from key,
// suitable for log lines that need to show "which key" without showing the
// key.
func KeyFingerprint(key []byte) uint64 {
	return siphash.Hash(fingerprintK0, fingerprintK1, key)
}

// NewInstanceID returns a fresh random identifier for tagging one stream or
// rng instance's log lines across its lifetime.
func NewInstanceID() string {
	return uuid.NewString()
}
