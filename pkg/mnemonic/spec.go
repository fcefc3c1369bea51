// Package mnemonic implements the BIP-39 mapping between entropy and
// checksummed word sequences.
//
// Encoding appends a SHA-256 derived checksum to the entropy and splits the
// result into 11-bit groups, one word per group. Decoding reverses this and
// optionally re-derives the checksum to catch transcription errors.
package mnemonic

import (
	"fmt"
)

// Size bounds.
const (
	MinWords       = 12
	MaxWords       = 24
	BitsPerWord    = 11
	MinEntropyBits = 128
	MaxEntropyBits = 256
)

// Spec is the sizing of one mnemonic: word count and the split of its
// bits between entropy and checksum. The zero Spec is invalid.
type Spec struct {
	words        int
	entropyBits  int
	checksumBits int
}

// SpecForWords derives the sizing from a word count.
func SpecForWords(words int) (Spec, error) {
	if words < MinWords || words > MaxWords || words%3 != 0 {
		return Spec{}, fmt.Errorf("%w: got %d", ErrInvalidWordCount, words)
	}
	overall := words * BitsPerWord
	cs := (words-MinWords)/3 + 4
	return Spec{
		words:        words,
		entropyBits:  overall - cs,
		checksumBits: cs,
	}, nil
}

// SpecForEntropyBits derives the sizing from an entropy length in bits.
func SpecForEntropyBits(bits int) (Spec, error) {
	if bits < MinEntropyBits || bits > MaxEntropyBits || bits%32 != 0 {
		return Spec{}, fmt.Errorf("%w: %d bits", ErrInvalidEntropy, bits)
	}
	cs := (bits-MinEntropyBits)/32 + 4
	return Spec{
		words:        (bits + cs) / BitsPerWord,
		entropyBits:  bits,
		checksumBits: cs,
	}, nil
}

// SpecForHex validates a hex entropy string and derives its sizing.
// Upper- and lower-case digits are accepted.
func SpecForHex(h string) (Spec, error) {
	if len(h)%2 != 0 {
		return Spec{}, fmt.Errorf("%w: odd hex length %d", ErrInvalidEntropy, len(h))
	}
	for i := 0; i < len(h); i++ {
		if _, ok := hexNibble(h[i]); !ok {
			return Spec{}, fmt.Errorf("%w: invalid hex character at %d", ErrInvalidEntropy, i)
		}
	}
	return SpecForEntropyBits(len(h) * 4)
}

// ValidateEntropy reports whether h is acceptable entropy for FromEntropy.
func ValidateEntropy(h string) bool {
	_, err := SpecForHex(h)
	return err == nil
}

// Words returns the number of words.
func (s Spec) Words() int { return s.words }

// EntropyBits returns the number of entropy bits.
func (s Spec) EntropyBits() int { return s.entropyBits }

// ChecksumBits returns the number of checksum bits.
func (s Spec) ChecksumBits() int { return s.checksumBits }

// OverallBits returns entropy plus checksum bits, always Words()*11.
func (s Spec) OverallBits() int { return s.entropyBits + s.checksumBits }

// EntropyBytes returns the entropy length in bytes.
func (s Spec) EntropyBytes() int { return s.entropyBits / 8 }

// HexLen returns the length of the canonical hex entropy string.
func (s Spec) HexLen() int { return s.entropyBits / 4 }

// ChecksumMask selects the checksum bits from the first digest byte.
func (s Spec) ChecksumMask() byte {
	return byte(0xff << (8 - s.checksumBits))
}

// IsValid reports whether s came from one of the Spec constructors.
func (s Spec) IsValid() bool { return s.words != 0 }

func (s Spec) String() string {
	return fmt.Sprintf("%d words (%d+%d bits)", s.words, s.entropyBits, s.checksumBits)
}
