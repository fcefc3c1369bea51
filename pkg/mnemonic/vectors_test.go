package mnemonic

import (
	"encoding/hex"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

// Published BIP-39 English test vectors.
var englishVectors = []struct {
	entropy  string
	mnemonic string
}{
	{
		"00000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	},
	{
		"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		"legal winner thank year wave sausage worth useful legal winner thank yellow",
	},
	{
		"80808080808080808080808080808080",
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	},
	{
		"ffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	},
	{
		"000000000000000000000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon agent",
	},
	{
		"ffffffffffffffffffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo when",
	},
	{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
	},
	{
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote",
	},
	{
		"9e885d952ad362caeb4efe34a8e91bd2",
		"ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
	},
	{
		"77c2b00716cec7213839159e404db50d",
		"jelly better achieve collect unaware mountain thought cargo oxygen act hood bridge",
	},
}

func TestFromEntropy_Vectors(t *testing.T) {
	c := testCodec(t)
	for _, v := range englishVectors {
		t.Run(v.entropy, func(t *testing.T) {
			m, err := c.FromEntropy(v.entropy)
			if err != nil {
				t.Fatalf("FromEntropy() error: %v", err)
			}
			if m.Sentence() != v.mnemonic {
				t.Errorf("FromEntropy() = %q, want %q", m.Sentence(), v.mnemonic)
			}
		})
	}
}

func TestFromWords_Vectors(t *testing.T) {
	c := testCodec(t)
	for _, v := range englishVectors {
		t.Run(v.entropy, func(t *testing.T) {
			m, err := c.FromWords(v.mnemonic, true)
			if err != nil {
				t.Fatalf("FromWords() error: %v", err)
			}
			if m.Entropy() != v.entropy {
				t.Errorf("FromWords() entropy = %s, want %s", m.Entropy(), v.entropy)
			}
		})
	}
}

func TestZeroEntropy_Fixture(t *testing.T) {
	m, err := testCodec(t).FromEntropy(strings.Repeat("0", 32))
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	if m.Checksum() != "0011" {
		t.Errorf("Checksum() = %q, want 0011", m.Checksum())
	}
	idx := m.Indices()
	for i := 0; i < 11; i++ {
		if idx[i] != 0 {
			t.Errorf("index %d = %d, want 0", i, idx[i])
		}
	}
	if idx[11] != 3 {
		t.Errorf("last index = %d, want 3", idx[11])
	}
	if g := m.Groups()[11]; g != "00000000011" {
		t.Errorf("last group = %q, want 00000000011", g)
	}
}

// The go-bip39 module implements the same standard independently and
// serves as an oracle for sizes the published vectors do not cover.
func TestAgainstReference_AllSizes(t *testing.T) {
	c := testCodec(t)
	rng := rand.New(rand.NewPCG(39, 2048))

	for _, n := range []int{16, 20, 24, 28, 32} {
		for i := 0; i < 25; i++ {
			raw := make([]byte, n)
			for j := range raw {
				raw[j] = byte(rng.UintN(256))
			}

			want, err := bip39.NewMnemonic(raw)
			if err != nil {
				t.Fatalf("bip39.NewMnemonic() error: %v", err)
			}
			m, err := c.FromEntropyBytes(raw)
			if err != nil {
				t.Fatalf("FromEntropyBytes() error: %v", err)
			}
			if m.Sentence() != want {
				t.Fatalf("FromEntropyBytes(%x) = %q, want %q", raw, m.Sentence(), want)
			}

			back, err := bip39.EntropyFromMnemonic(m.Sentence())
			if err != nil {
				t.Fatalf("bip39.EntropyFromMnemonic() error: %v", err)
			}
			if hex.EncodeToString(back) != m.Entropy() {
				t.Errorf("reference decode = %x, want %s", back, m.Entropy())
			}
		}
	}
}

func TestGenerate_AcceptedByReference(t *testing.T) {
	c := testCodec(t)
	for _, w := range []int{12, 15, 18, 21, 24} {
		m, err := c.Generate(w)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", w, err)
		}
		if !bip39.IsMnemonicValid(m.Sentence()) {
			t.Errorf("reference rejects generated %d-word mnemonic", w)
		}
	}
}
