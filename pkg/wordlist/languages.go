package wordlist

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Language names accepted by ForLanguage.
const (
	English            = "english"
	Japanese           = "japanese"
	Korean             = "korean"
	Spanish            = "spanish"
	French             = "french"
	Italian            = "italian"
	ChineseSimplified  = "chinese_simplified"
	ChineseTraditional = "chinese_traditional"
)

// ideographicSpace separates Japanese mnemonic words.
const ideographicSpace = "　"

type builtin struct {
	words []string
	sep   string

	once sync.Once
	list *List
	err  error
}

var builtins = map[string]*builtin{
	English:            {words: wordlists.English, sep: " "},
	Japanese:           {words: wordlists.Japanese, sep: ideographicSpace},
	Korean:             {words: wordlists.Korean, sep: " "},
	Spanish:            {words: wordlists.Spanish, sep: " "},
	French:             {words: wordlists.French, sep: " "},
	Italian:            {words: wordlists.Italian, sep: " "},
	ChineseSimplified:  {words: wordlists.ChineseSimplified, sep: " "},
	ChineseTraditional: {words: wordlists.ChineseTraditional, sep: " "},
}

// ForLanguage returns the built-in list for lang. Lists are built lazily on
// first use and shared afterwards.
func ForLanguage(lang string) (*List, error) {
	b, ok := builtins[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	b.once.Do(func() {
		b.list, b.err = newList(b.words, b.sep)
	})
	return b.list, b.err
}

// Default returns the English list.
func Default() *List {
	l, err := ForLanguage(English)
	if err != nil {
		// The embedded English table is fixed; failing here means the
		// dependency itself is broken.
		panic(fmt.Sprintf("wordlist: english table invalid: %v", err))
	}
	return l
}

// Languages returns the names of all built-in lists, sorted.
func Languages() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLanguage reports whether lang names a built-in list.
func IsLanguage(lang string) bool {
	_, ok := builtins[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}
