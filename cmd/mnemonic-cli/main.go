// mnemonic-cli generates, encodes and checks BIP-39 mnemonic sentences.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

func main() {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	os.Exit(a.run(os.Args[1:]))
}

// app carries the process streams so commands can be driven from tests.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg   *config.Config
	codec *mnemonic.Codec
}

// errUsage marks errors that should be followed by the usage text.
var errUsage = errors.New("usage")

func (a *app) run(args []string) int {
	cfg, flags, err := config.Load(args)
	switch {
	case errors.Is(err, config.ErrHelp):
		fmt.Fprint(a.stdout, config.Usage)
		return 0
	case err != nil:
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 2
	}
	if flags.Version {
		fmt.Fprintf(a.stdout, "mnemonic-cli version %s\n", config.Version)
		return 0
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(a.stderr, "Error: init logging: %v\n", err)
		return 1
	}
	if len(flags.Args) == 0 {
		fmt.Fprint(a.stderr, config.Usage)
		return 2
	}

	wl, err := wordlist.ForLanguage(cfg.Language)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	a.cfg = cfg
	a.codec = mnemonic.NewCodec(wl)
	a.codec.SetLogger(log.Codec)

	cmd, cmdArgs := flags.Args[0], flags.Args[1:]
	log.CLI.Debug().Str("command", cmd).Str("language", cfg.Language).Msg("Running command")

	switch cmd {
	case "generate":
		err = a.cmdGenerate(cmdArgs)
	case "encode":
		err = a.cmdEncode(cmdArgs)
	case "decode":
		err = a.cmdDecode(cmdArgs)
	case "check":
		err = a.cmdCheck(cmdArgs)
	case "wordlist":
		err = a.cmdWordlist(cmdArgs)
	case "config":
		fmt.Fprint(a.stdout, config.SampleConfig())
	case "help":
		fmt.Fprint(a.stdout, config.Usage)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(a.stderr, "\n"+config.Usage)
			return 2
		}
		return 1
	}
	return 0
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *app) cmdGenerate(args []string) error {
	fs := newFlagSet("generate")
	words := fs.Int("words", a.cfg.Words, "Word count (12, 15, 18, 21 or 24)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	m, err := a.codec.Generate(*words)
	if err != nil {
		return fmt.Errorf("generate mnemonic: %w", err)
	}

	fmt.Fprintln(a.stdout, "Mnemonic (write this down!):")
	fmt.Fprintf(a.stdout, "  %s\n\n", m.Sentence())
	a.printDetails(m)
	return nil
}

func (a *app) cmdEncode(args []string) error {
	fs := newFlagSet("encode")
	ent := fs.String("entropy", "", "Entropy as hex (32, 40, 48, 56 or 64 digits)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *ent == "" && fs.NArg() == 1 {
		*ent = fs.Arg(0)
	}
	if *ent == "" {
		return fmt.Errorf("%w: encode --entropy <hex>", errUsage)
	}

	m, err := a.codec.FromEntropy(strings.TrimSpace(*ent))
	if err != nil {
		return fmt.Errorf("encode entropy: %w", err)
	}
	fmt.Fprintln(a.stdout, m.Sentence())
	return nil
}

func (a *app) cmdDecode(args []string) error {
	fs := newFlagSet("decode")
	phrase := fs.String("phrase", "", "Mnemonic phrase (prompted when omitted)")
	noVerify := fs.Bool("no-verify", !a.cfg.Verify, "Skip checksum verification")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	p, err := a.phrase(*phrase)
	if err != nil {
		return err
	}
	r, err := a.codec.Decode(p, !*noVerify)
	if err != nil {
		return fmt.Errorf("decode phrase: %w", err)
	}
	if r.Status == mnemonic.StatusUnknownWord {
		return fmt.Errorf("word %d is not in the %s wordlist", r.UnknownAt+1, a.cfg.Language)
	}

	a.printDetails(r.Mnemonic)
	if *noVerify {
		fmt.Fprintln(a.stdout, "Checksum:    not verified")
	}
	return nil
}

func (a *app) cmdCheck(args []string) error {
	fs := newFlagSet("check")
	phrase := fs.String("phrase", "", "Mnemonic phrase (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	p, err := a.phrase(*phrase)
	if err != nil {
		return err
	}
	if err := a.codec.Validate(p); err != nil {
		return fmt.Errorf("invalid mnemonic: %w", err)
	}
	fmt.Fprintln(a.stdout, "OK")
	return nil
}

func (a *app) cmdWordlist(args []string) error {
	fs := newFlagSet("wordlist")
	lang := fs.String("lang", a.cfg.Language, "Wordlist language")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	wl, err := wordlist.ForLanguage(*lang)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(a.stdout)
	for _, word := range wl.Words() {
		fmt.Fprintln(w, word)
	}
	return w.Flush()
}

func (a *app) printDetails(m *mnemonic.Mnemonic) {
	fmt.Fprintf(a.stdout, "Words:       %d\n", m.WordCount())
	fmt.Fprintf(a.stdout, "Entropy:     %s\n", m.Entropy())
	fmt.Fprintf(a.stdout, "Checksum:    %s\n", m.Checksum())
	fmt.Fprintf(a.stdout, "Fingerprint: %s\n", crypto.Fingerprint(m.EntropyBytes()))
}

// ── Phrase input ────────────────────────────────────────────────────────

// phrase returns flagValue, or reads the phrase from stdin. On a terminal
// the input is not echoed.
func (a *app) phrase(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.stderr, "Enter mnemonic: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr) // newline after hidden input
		if err != nil {
			return "", fmt.Errorf("read phrase: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read phrase: %w", err)
	}
	if strings.TrimSpace(line) == "" {
		return "", fmt.Errorf("%w: no phrase given", errUsage)
	}
	return line, nil
}
