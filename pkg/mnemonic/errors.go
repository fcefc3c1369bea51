package mnemonic

import (
	"errors"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/entropy"
)

// Codec errors.
var (
	ErrInvalidWordCount = errors.New("word count must be 12, 15, 18, 21 or 24")
	ErrInvalidEntropy   = errors.New("entropy must be 128-256 bits of hex in 32-bit steps")
	ErrEmptyWordlist    = errors.New("wordlist is empty or unset")
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")
	ErrInvalidBits      = errors.New("malformed bit string")

	// ErrUnknownWord is only returned by Validate. Decode and FromWords
	// report unknown words as data, not as an error.
	ErrUnknownWord = errors.New("word not in wordlist")

	// ErrEntropySource is returned when secure randomness is unavailable.
	ErrEntropySource = entropy.ErrSource
)
