// Package config handles configuration for the mnemonic tools.
//
// Settings come from three layers, later ones winning:
//   - Built-in defaults
//   - An optional key = value config file
//   - Command-line flags
//
// The config file is only ever read.
package config

// Config holds runtime settings for mnemonic generation and decoding.
type Config struct {
	// Wordlist language, e.g. "english" or "japanese".
	Language string `conf:"language"`

	// Word count for newly generated mnemonics (12, 15, 18, 21 or 24).
	Words int `conf:"words"`

	// Verify checksums when decoding phrases.
	Verify bool `conf:"verify"`

	// Logging
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}
