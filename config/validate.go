package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Validate checks the configuration for operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if !wordlist.IsLanguage(cfg.Language) {
		return fmt.Errorf("language must be one of %v, got %q", wordlist.Languages(), cfg.Language)
	}
	if _, err := mnemonic.SpecForWords(cfg.Words); err != nil {
		return fmt.Errorf("words: %w", err)
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}
	return nil
}
