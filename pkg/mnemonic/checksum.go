package mnemonic

import (
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
)

// HashFunc is the 256-bit digest checksums are derived from.
type HashFunc func(data []byte) [crypto.DigestSize]byte

// Checksum returns the BIP-39 checksum bits for entropy using SHA-256.
func Checksum(entropy []byte) (string, error) {
	spec, err := SpecForEntropyBits(len(entropy) * 8)
	if err != nil {
		return "", err
	}
	return checksumBits(crypto.Digest256, entropy, spec), nil
}

// checksumBits takes the top ChecksumBits of the first digest byte. The
// checksum never exceeds eight bits, so no other digest byte is read.
func checksumBits(hash HashFunc, entropy []byte, spec Spec) string {
	digest := hash(entropy)
	cs := spec.ChecksumBits()
	v := (digest[0] & spec.ChecksumMask()) >> (8 - cs)

	var b strings.Builder
	b.Grow(cs)
	writeBits(&b, int(v), cs)
	return b.String()
}
