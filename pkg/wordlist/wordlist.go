// Package wordlist provides the fixed 2048-word vocabularies that mnemonic
// words are drawn from.
//
// A List is immutable once built and safe for concurrent lookups.
package wordlist

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Size is the number of words every BIP-39 wordlist holds.
const Size = 2048

// NotFound is returned by Index for words that are not in the list.
const NotFound = -1

// Wordlist errors.
var (
	ErrSize            = errors.New("wordlist must contain exactly 2048 words")
	ErrDuplicate       = errors.New("wordlist contains a duplicate word")
	ErrUnknownLanguage = errors.New("unknown wordlist language")
)

// Wordlist is a bijection between indices [0, Size) and words.
type Wordlist interface {
	// Len returns the number of words in the list.
	Len() int
	// Word returns the word at index i.
	Word(i int) string
	// Index returns the position of word, or NotFound.
	Index(word string) int
	// Separator is the string placed between words of a sentence.
	Separator() string
}

// List is the concrete Wordlist backed by a slice and a reverse index.
type List struct {
	words []string
	index map[string]int
	sep   string
}

// New builds a List from exactly Size distinct words.
// Words are compared in NFKD form, so precomposed and decomposed spellings
// of the same word resolve to the same index.
func New(words []string) (*List, error) {
	return newList(words, " ")
}

func newList(words []string, sep string) (*List, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrSize, len(words))
	}
	l := &List{
		words: make([]string, Size),
		index: make(map[string]int, Size),
		sep:   sep,
	}
	copy(l.words, words)
	for i, w := range l.words {
		key := Normalize(w)
		if _, ok := l.index[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, w)
		}
		l.index[key] = i
	}
	return l, nil
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Word returns the word at index i. It returns "" when i is out of range.
func (l *List) Word(i int) string {
	if l == nil || i < 0 || i >= len(l.words) {
		return ""
	}
	return l.words[i]
}

// Index returns the position of word in the list, or NotFound.
func (l *List) Index(word string) int {
	if l == nil {
		return NotFound
	}
	if i, ok := l.index[Normalize(word)]; ok {
		return i
	}
	return NotFound
}

// Separator returns the word separator for sentences in this list's language.
func (l *List) Separator() string {
	return l.sep
}

// Words returns a copy of the list in index order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Normalize returns the lookup form of a word: NFKD, lower case, trimmed.
func Normalize(word string) string {
	return norm.NFKD.String(strings.ToLower(strings.TrimSpace(word)))
}
