package config

import "github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"

// DefaultWords is the word count used when none is configured. 24 words
// carry the full 256 bits of entropy.
const DefaultWords = 24

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Language: wordlist.English,
		Words:    DefaultWords,
		Verify:   true,
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
