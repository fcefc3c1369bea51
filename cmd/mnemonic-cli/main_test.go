package main

import (
	"bytes"
	"strings"
	"testing"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := &app{
		stdin:  strings.NewReader(stdin),
		stdout: &out,
		stderr: &errOut,
	}
	code = a.run(append([]string{"--log-level", "error"}, args...))
	return code, out.String(), errOut.String()
}

func TestCLI_Encode(t *testing.T) {
	code, out, errOut := runCLI(t, "", "encode", "--entropy", "00000000000000000000000000000000")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if strings.TrimSpace(out) != zeroPhrase {
		t.Errorf("stdout = %q, want %q", out, zeroPhrase)
	}
}

func TestCLI_EncodeInvalid(t *testing.T) {
	code, _, errOut := runCLI(t, "", "encode", "--entropy", strings.Repeat("0", 30))
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(errOut, "entropy") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestCLI_Generate(t *testing.T) {
	code, out, errOut := runCLI(t, "", "generate", "--words", "15")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 2 || len(strings.Fields(lines[1])) != 15 {
		t.Errorf("stdout = %q, want a 15-word phrase on line 2", out)
	}
	if !strings.Contains(out, "Words:       15") {
		t.Errorf("stdout missing word count: %q", out)
	}
}

func TestCLI_GenerateInvalidWords(t *testing.T) {
	code, _, _ := runCLI(t, "", "generate", "--words", "13")
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
}

func TestCLI_DecodeFromStdin(t *testing.T) {
	code, out, errOut := runCLI(t, zeroPhrase+"\n", "decode")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if !strings.Contains(out, "Entropy:     00000000000000000000000000000000") {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(out, "Checksum:    0011") {
		t.Errorf("stdout = %q", out)
	}
}

func TestCLI_DecodeUnknownWord(t *testing.T) {
	phrase := strings.Replace(zeroPhrase, "about", "abut", 1)
	code, _, errOut := runCLI(t, "", "decode", "--phrase", phrase)
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(errOut, "word 12") {
		t.Errorf("stderr = %q, want position of unknown word", errOut)
	}
}

func TestCLI_DecodeNoVerify(t *testing.T) {
	phrase := strings.TrimSpace(strings.Repeat("abandon ", 12))
	code, out, errOut := runCLI(t, "", "decode", "--no-verify", "--phrase", phrase)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if !strings.Contains(out, "not verified") {
		t.Errorf("stdout = %q", out)
	}
}

func TestCLI_Check(t *testing.T) {
	code, out, _ := runCLI(t, "", "check", "--phrase", zeroPhrase)
	if code != 0 || strings.TrimSpace(out) != "OK" {
		t.Fatalf("exit = %d, stdout = %q", code, out)
	}

	bad := strings.TrimSpace(strings.Repeat("abandon ", 12))
	code, _, errOut := runCLI(t, "", "check", "--phrase", bad)
	if code != 1 || !strings.Contains(errOut, "checksum") {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
}

func TestCLI_Wordlist(t *testing.T) {
	code, out, _ := runCLI(t, "", "wordlist")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	words := strings.Fields(out)
	if len(words) != 2048 || words[0] != "abandon" || words[2047] != "zoo" {
		t.Errorf("wordlist output has %d words", len(words))
	}
}

func TestCLI_Language(t *testing.T) {
	code, out, errOut := runCLI(t, "", "--lang", "spanish", "encode", "--entropy", "00000000000000000000000000000000")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if strings.Contains(out, "abandon") {
		t.Errorf("stdout = %q, want spanish words", out)
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	code, _, errOut := runCLI(t, "", "frobnicate")
	if code != 2 || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
}

func TestCLI_NoCommand(t *testing.T) {
	code, _, _ := runCLI(t, "")
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestCLI_Help(t *testing.T) {
	code, out, _ := runCLI(t, "", "--help")
	if code != 0 || !strings.Contains(out, "mnemonic-cli") {
		t.Fatalf("exit = %d, stdout = %q", code, out)
	}
}

func TestCLI_Version(t *testing.T) {
	code, out, _ := runCLI(t, "", "--version")
	if code != 0 || !strings.Contains(out, "version") {
		t.Fatalf("exit = %d, stdout = %q", code, out)
	}
}

func TestCLI_Config(t *testing.T) {
	code, out, _ := runCLI(t, "", "config")
	if code != 0 || !strings.Contains(out, "language = english") {
		t.Fatalf("exit = %d, stdout = %q", code, out)
	}
}
