package mnemonic

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// HexToBits expands hex into a string of '0' and '1', four bits per digit,
// most significant bit first.
func HexToBits(h string) (string, error) {
	var b strings.Builder
	b.Grow(len(h) * 4)
	for i := 0; i < len(h); i++ {
		v, ok := hexNibble(h[i])
		if !ok {
			return "", fmt.Errorf("%w: invalid hex character at %d", ErrInvalidEntropy, i)
		}
		writeBits(&b, int(v), 4)
	}
	return b.String(), nil
}

// BitsToHex packs a bit string into lowercase hex. The length must be a
// multiple of four.
func BitsToHex(bits string) (string, error) {
	if len(bits)%4 != 0 {
		return "", fmt.Errorf("%w: length %d not a multiple of 4", ErrInvalidBits, len(bits))
	}
	var b strings.Builder
	b.Grow(len(bits) / 4)
	for i := 0; i < len(bits); i += 4 {
		v, err := bitsValue(bits[i : i+4])
		if err != nil {
			return "", err
		}
		b.WriteByte(hexDigits[v])
	}
	return b.String(), nil
}

// SplitGroups slices bits into consecutive 11-bit word groups.
func SplitGroups(bits string) ([]string, error) {
	if len(bits)%BitsPerWord != 0 {
		return nil, fmt.Errorf("%w: length %d not a multiple of %d", ErrInvalidBits, len(bits), BitsPerWord)
	}
	groups := make([]string, 0, len(bits)/BitsPerWord)
	for i := 0; i < len(bits); i += BitsPerWord {
		groups = append(groups, bits[i:i+BitsPerWord])
	}
	return groups, nil
}

// GroupValue interprets an 11-bit group as a big-endian word index.
func GroupValue(group string) (int, error) {
	if len(group) != BitsPerWord {
		return 0, fmt.Errorf("%w: group length %d", ErrInvalidBits, len(group))
	}
	return bitsValue(group)
}

// IndexBits renders a word index as its 11-bit group.
func IndexBits(index int) string {
	var b strings.Builder
	b.Grow(BitsPerWord)
	writeBits(&b, index, BitsPerWord)
	return b.String()
}

func writeBits(b *strings.Builder, v, width int) {
	for shift := width - 1; shift >= 0; shift-- {
		b.WriteByte('0' + byte(v>>shift&1))
	}
}

func bitsValue(bits string) (int, error) {
	v := 0
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidBits, bits[i])
		}
	}
	return v, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
