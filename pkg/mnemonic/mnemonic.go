package mnemonic

import (
	"encoding/hex"
	"strings"
)

// Mnemonic is an encoded entropy value: its words, their indices in the
// wordlist and the raw 11-bit groups, in order. A Mnemonic is immutable;
// accessors return copies.
//
// The zero Mnemonic has no words. Decode and FromWords return it when the
// phrase contains a word that is not in the wordlist.
type Mnemonic struct {
	entropy  string
	checksum string
	words    []string
	indices  []int
	groups   []string
	sep      string
}

// Entropy returns the entropy as lowercase hex.
func (m *Mnemonic) Entropy() string { return m.entropy }

// EntropyBytes returns the raw entropy.
func (m *Mnemonic) EntropyBytes() []byte {
	b, _ := hex.DecodeString(m.entropy)
	return b
}

// Checksum returns the checksum bits appended to the entropy.
func (m *Mnemonic) Checksum() string { return m.checksum }

// Words returns the mnemonic words.
func (m *Mnemonic) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

// Indices returns the wordlist index of each word.
func (m *Mnemonic) Indices() []int {
	out := make([]int, len(m.indices))
	copy(out, m.indices)
	return out
}

// Groups returns the 11-bit group behind each word, as '0'/'1' strings.
func (m *Mnemonic) Groups() []string {
	out := make([]string, len(m.groups))
	copy(out, m.groups)
	return out
}

// WordCount returns the number of words; 0 for an empty Mnemonic.
func (m *Mnemonic) WordCount() int { return len(m.words) }

// IsEmpty reports whether m holds no words.
func (m *Mnemonic) IsEmpty() bool { return len(m.words) == 0 }

// Spec returns the sizing of m. It is the zero Spec for an empty Mnemonic.
func (m *Mnemonic) Spec() Spec {
	s, err := SpecForWords(len(m.words))
	if err != nil {
		return Spec{}
	}
	return s
}

// Sentence joins the words with the wordlist's separator.
func (m *Mnemonic) Sentence() string {
	sep := m.sep
	if sep == "" {
		sep = " "
	}
	return strings.Join(m.words, sep)
}

// String returns the sentence.
func (m *Mnemonic) String() string { return m.Sentence() }
