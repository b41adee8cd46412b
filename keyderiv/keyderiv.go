// Package keyderiv derives cipher keys and IVs from a human passphrase
// rather than raw entropy, for the common case of a user supplying a
// memorable secret instead of generating and storing 32 random bytes.
package keyderiv

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Iterations is the PBKDF2 round count. It trades derivation latency
// against resistance to offline guessing; this module makes no
// cryptographic strength claim, so the
// count here is chosen for reasonable interactive latency, not a security
// target.
const Iterations = 100_000

// keySize and ivSize match the cipher package's maximum key length and the
// stream package's base IV length.
const (
	keySize = 32
	ivSize  = 16
)

// FromPassphrase derives a 32-byte key and 16-byte IV from passphrase and
// salt via PBKDF2-HMAC-SHA256. The same (passphrase, salt) pair always
// yields the same (key, iv); callers that need a fresh keystream per
// passphrase should vary salt.
func FromPassphrase(passphrase string, salt []byte) (key [keySize]byte, iv [ivSize]byte) {
	derived := pbkdf2.Key([]byte(passphrase), salt, Iterations, keySize+ivSize, sha256.New)
	copy(key[:], derived[:keySize])
	copy(iv[:], derived[keySize:])
	return key, iv
}
