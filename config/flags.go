package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Version is the tool version reported by --version.
const Version = "0.1.0"

// ErrHelp is returned by Load when --help was requested.
var ErrHelp = flag.ErrHelp

// Flags holds parsed global command-line flags.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Core
	Config   string
	Language string
	Words    int
	NoVerify bool

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args: the subcommand and its arguments.
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetLogJSON bool
}

// ParseFlags parses global flags from args (without the program name).
// Parsing stops at the first non-flag argument, the subcommand.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("mnemonic-cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	// Core
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")
	fs.StringVar(&f.Language, "language", "", "Wordlist language")
	fs.StringVar(&f.Language, "lang", "", "Wordlist language (shorthand)")
	fs.IntVar(&f.Words, "words", 0, "Word count for generated mnemonics")
	fs.BoolVar(&f.NoVerify, "no-verify", false, "Skip checksum verification when decoding")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			f.Help = true
			return f, nil
		}
		return nil, err
	}

	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()
	return f, nil
}

// ApplyFlags applies command-line flags to cfg.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.Language != "" {
		cfg.Language = strings.ToLower(f.Language)
	}
	if f.Words != 0 {
		cfg.Words = f.Words
	}
	if f.NoVerify {
		cfg.Verify = false
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(f.LogLevel)
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Usage is the global help text.
const Usage = `mnemonic-cli - BIP-39 mnemonic sentences

Usage:
  mnemonic-cli [global flags] <command> [flags]

Commands:
  generate   Generate a new mnemonic            [--words N]
  encode     Encode hex entropy as a mnemonic   --entropy HEX
  decode     Decode a phrase to its entropy     [--phrase "..."] [--no-verify]
  check      Validate a phrase                  [--phrase "..."]
  wordlist   Print the wordlist                 [--lang L]
  config     Print a sample config file
  help       Show this help message

Global flags:
  --config, -c    Config file path
  --language      Wordlist language (default: english)
  --words         Word count for generate: 12, 15, 18, 21 or 24 (default: 24)
  --no-verify     Skip checksum verification when decoding
  --log-level     Log level: debug, info, warn, error (default: warn)
  --log-file      Also write JSON logs to this file
  --log-json      Output logs as JSON
  --version, -v   Show version information

When --phrase is omitted, decode and check read the phrase from the
terminal without echoing it.
`

// Load builds the configuration with the following precedence:
// 1. Default values
// 2. Config file (only when --config is given)
// 3. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}
	if flags.Help {
		return nil, flags, ErrHelp
	}

	cfg := Default()

	if flags.Config != "" {
		fileValues, err := LoadFile(flags.Config)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config file: %w", err)
		}
		if err := ApplyFileConfig(cfg, fileValues); err != nil {
			return nil, nil, fmt.Errorf("applying config file: %w", err)
		}
	}

	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}
