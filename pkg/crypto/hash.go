// Package crypto provides the hash primitives used by the mnemonic codec.
package crypto

import (
	"encoding/hex"

	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
)

// DigestSize is the length of a Digest256 output in bytes.
const DigestSize = 32

// FingerprintSize is the number of digest bytes kept by Fingerprint.
const FingerprintSize = 4

// Digest256 computes the SHA-256 digest of data.
// This is the hash BIP-39 derives mnemonic checksums from.
func Digest256(data []byte) [DigestSize]byte {
	return sha256.Sum256(data)
}

// Fingerprint returns a short BLAKE3-based identifier for secret material.
// It is safe to log: 32 bits of a one-way hash reveal nothing usable about
// the input, but are enough to correlate log lines for the same secret.
func Fingerprint(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:FingerprintSize])
}
