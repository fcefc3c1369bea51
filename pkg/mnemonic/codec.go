package mnemonic

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	klog "github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/entropy"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Status classifies the outcome of a Decode that did not fail.
type Status int

const (
	// StatusOK means every word was found (and the checksum matched, if
	// verification was requested).
	StatusOK Status = iota
	// StatusUnknownWord means a word is missing from the wordlist.
	StatusUnknownWord
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnknownWord:
		return "unknown word"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of Decode.
type Result struct {
	// Mnemonic is the decoded value; empty unless Status is StatusOK.
	Mnemonic *Mnemonic
	Status   Status
	// UnknownAt is the zero-based position of the first unknown word, or -1.
	UnknownAt int
}

// Codec encodes entropy into mnemonics and decodes them back.
//
// Configure a Codec with the Set methods before its first use; after that
// it is read-only and may be shared between goroutines.
type Codec struct {
	wordlist wordlist.Wordlist
	source   entropy.Source
	hash     HashFunc
	log      *zerolog.Logger
}

// NewCodec returns a codec over wl using SHA-256 and the system entropy
// source. A nil or empty wl is accepted here and reported as
// ErrEmptyWordlist by every operation.
func NewCodec(wl wordlist.Wordlist) *Codec {
	return &Codec{
		wordlist: wl,
		source:   entropy.Default(),
		hash:     crypto.Digest256,
	}
}

// SetSource replaces the entropy source used by Generate.
func (c *Codec) SetSource(s entropy.Source) {
	c.source = s
}

// SetHasher replaces the digest used for checksums.
func (c *Codec) SetHasher(h HashFunc) {
	c.hash = h
}

// SetLogger overrides the component logger.
func (c *Codec) SetLogger(l zerolog.Logger) {
	c.log = &l
}

// Wordlist returns the codec's wordlist.
func (c *Codec) Wordlist() wordlist.Wordlist {
	return c.wordlist
}

func (c *Codec) logger() *zerolog.Logger {
	if c.log != nil {
		return c.log
	}
	return &klog.Codec
}

func (c *Codec) checkWordlist() error {
	if c.wordlist == nil {
		return ErrEmptyWordlist
	}
	switch n := c.wordlist.Len(); {
	case n == 0:
		return ErrEmptyWordlist
	case n != wordlist.Size:
		return fmt.Errorf("%w: got %d", wordlist.ErrSize, n)
	}
	return nil
}

// Generate creates a mnemonic of the given word count from fresh entropy.
func (c *Codec) Generate(words int) (*Mnemonic, error) {
	spec, err := SpecForWords(words)
	if err != nil {
		return nil, err
	}
	if err := c.checkWordlist(); err != nil {
		return nil, err
	}
	if c.source == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrEntropySource)
	}

	buf := make([]byte, spec.EntropyBytes())
	defer clear(buf)
	if err := c.source.Fill(buf); err != nil {
		if errors.Is(err, ErrEntropySource) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrEntropySource, err)
	}
	return c.encode(buf, spec), nil
}

// FromEntropy encodes hex entropy of 128, 160, 192, 224 or 256 bits.
func (c *Codec) FromEntropy(h string) (*Mnemonic, error) {
	spec, err := SpecForHex(h)
	if err != nil {
		return nil, err
	}
	if err := c.checkWordlist(); err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntropy, err)
	}
	defer clear(raw)
	return c.encode(raw, spec), nil
}

// FromEntropyBytes encodes raw entropy of 16, 20, 24, 28 or 32 bytes.
func (c *Codec) FromEntropyBytes(raw []byte) (*Mnemonic, error) {
	spec, err := SpecForEntropyBits(len(raw) * 8)
	if err != nil {
		return nil, err
	}
	if err := c.checkWordlist(); err != nil {
		return nil, err
	}
	return c.encode(raw, spec), nil
}

// encode builds the mnemonic for validated entropy.
func (c *Codec) encode(raw []byte, spec Spec) *Mnemonic {
	entHex := hex.EncodeToString(raw)
	cs := checksumBits(c.hash, raw, spec)

	// entHex is produced above, so neither call can fail, and the bit
	// string is always Words()*11 long.
	bits, _ := HexToBits(entHex)
	groups, _ := SplitGroups(bits + cs)

	m := &Mnemonic{
		entropy:  entHex,
		checksum: cs,
		words:    make([]string, 0, spec.Words()),
		indices:  make([]int, 0, spec.Words()),
		groups:   groups,
		sep:      c.wordlist.Separator(),
	}
	for _, g := range groups {
		idx, _ := GroupValue(g)
		m.indices = append(m.indices, idx)
		m.words = append(m.words, c.wordlist.Word(idx))
	}

	c.logger().Debug().
		Int("words", spec.Words()).
		Str("fingerprint", crypto.Fingerprint(raw)).
		Msg("Mnemonic encoded")
	return m
}

// Decode parses a whitespace-separated phrase. When verify is set the
// checksum is recomputed and a mismatch fails with ErrChecksumMismatch.
//
// A word missing from the wordlist is not an error: the Result carries
// StatusUnknownWord, the position of the word and an empty Mnemonic. This
// keeps "the user mistyped a word" apart from real failures.
func (c *Codec) Decode(phrase string, verify bool) (Result, error) {
	if err := c.checkWordlist(); err != nil {
		return Result{}, err
	}
	words := strings.Fields(phrase)
	spec, err := SpecForWords(len(words))
	if err != nil {
		return Result{}, err
	}

	m := &Mnemonic{
		words:   make([]string, 0, spec.Words()),
		indices: make([]int, 0, spec.Words()),
		groups:  make([]string, 0, spec.Words()),
		sep:     c.wordlist.Separator(),
	}
	var bits strings.Builder
	bits.Grow(spec.OverallBits())
	for i, w := range words {
		idx := c.wordlist.Index(w)
		if idx < 0 || idx >= wordlist.Size {
			return Result{Mnemonic: &Mnemonic{}, Status: StatusUnknownWord, UnknownAt: i}, nil
		}
		g := IndexBits(idx)
		m.words = append(m.words, c.wordlist.Word(idx))
		m.indices = append(m.indices, idx)
		m.groups = append(m.groups, g)
		bits.WriteString(g)
	}

	all := bits.String()
	entBits, csBits := all[:spec.EntropyBits()], all[spec.EntropyBits():]
	entHex, err := BitsToHex(entBits)
	if err != nil {
		return Result{}, err
	}
	m.entropy = entHex
	m.checksum = csBits

	if verify {
		raw, _ := hex.DecodeString(entHex)
		want := checksumBits(c.hash, raw, spec)
		fp := crypto.Fingerprint(raw)
		clear(raw)
		if subtle.ConstantTimeCompare([]byte(csBits), []byte(want)) != 1 {
			c.logger().Debug().
				Int("words", spec.Words()).
				Msg("Mnemonic checksum mismatch")
			return Result{}, ErrChecksumMismatch
		}
		c.logger().Debug().
			Int("words", spec.Words()).
			Str("fingerprint", fp).
			Msg("Mnemonic decoded")
	}

	return Result{Mnemonic: m, Status: StatusOK, UnknownAt: -1}, nil
}

// FromWords decodes a phrase. An unknown word yields an empty Mnemonic
// (WordCount 0) and a nil error; see Decode.
func (c *Codec) FromWords(phrase string, verify bool) (*Mnemonic, error) {
	r, err := c.Decode(phrase, verify)
	if err != nil {
		return nil, err
	}
	return r.Mnemonic, nil
}

// Validate checks that phrase is a complete mnemonic with a valid
// checksum. Unlike Decode, an unknown word is reported as ErrUnknownWord.
func (c *Codec) Validate(phrase string) error {
	r, err := c.Decode(phrase, true)
	if err != nil {
		return err
	}
	if r.Status == StatusUnknownWord {
		return fmt.Errorf("%w: position %d", ErrUnknownWord, r.UnknownAt+1)
	}
	return nil
}
