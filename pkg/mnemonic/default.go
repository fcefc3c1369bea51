package mnemonic

import (
	"sync"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

var (
	defaultOnce  sync.Once
	defaultCodec *Codec
)

// Default returns the shared English codec. Do not call its Set methods.
func Default() *Codec {
	defaultOnce.Do(func() {
		defaultCodec = NewCodec(wordlist.Default())
	})
	return defaultCodec
}

// Generate creates an English mnemonic of the given word count.
func Generate(words int) (*Mnemonic, error) {
	return Default().Generate(words)
}

// FromEntropy encodes hex entropy as an English mnemonic.
func FromEntropy(h string) (*Mnemonic, error) {
	return Default().FromEntropy(h)
}

// FromWords decodes an English phrase.
func FromWords(phrase string, verify bool) (*Mnemonic, error) {
	return Default().FromWords(phrase, verify)
}

// Validate checks an English phrase.
func Validate(phrase string) error {
	return Default().Validate(phrase)
}
