// Package charmap provides single-byte character set transcoding for the
// ISO 8859 family.
//
// A Charmap maps every defined byte of a charset to its Unicode rune and
// back. Bytes 0x00-0x7F are ASCII in every supported charset, including the
// control codes, which are treated as valid for convenience even though the
// standards leave them undefined. Bytes 0x80-0x9F have no assigned character
// and are rejected on both directions.
//
// Charmap instances are immutable and safe for concurrent use.
package charmap

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arloliu/basen/errs"
)

// highBase is the first byte of the charset-specific mapping window.
const highBase = 0xA0

// Charmap is an immutable mapping between a single-byte charset and Unicode.
type Charmap struct {
	name     string
	high     [256 - highBase]rune // Byte 0xA0+i → rune
	fromRune map[rune]byte
}

// newCharmap builds a charmap from the 0xA0-0xFF rune table.
// Bytes below 0xA0 follow the shared ASCII/undefined layout.
func newCharmap(name string, high [256 - highBase]rune) *Charmap {
	c := &Charmap{
		name:     name,
		high:     high,
		fromRune: make(map[rune]byte, len(high)),
	}
	for i, r := range high {
		c.fromRune[r] = byte(highBase + i)
	}

	return c
}

// Name returns the charset name, e.g. "ISO-8859-1".
func (c *Charmap) Name() string {
	return c.name
}

// Valid reports whether the byte has an assigned character in the charset.
func (c *Charmap) Valid(b byte) bool {
	return b < 0x80 || b >= highBase
}

// DecodeByte converts one charset byte to its rune.
// Returns ErrUndefinedByte for bytes in the undefined 0x80-0x9F window.
func (c *Charmap) DecodeByte(b byte) (rune, error) {
	switch {
	case b < 0x80:
		return rune(b), nil
	case b < highBase:
		return 0, fmt.Errorf("%w: 0x%02x in %s", errs.ErrUndefinedByte, b, c.name)
	default:
		return c.high[b-highBase], nil
	}
}

// Decode converts charset bytes to a Go string.
//
// Decoding is strict: the first undefined byte aborts with ErrUndefinedByte
// and no partial result is returned.
func (c *Charmap) Decode(data []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data))

	for _, b := range data {
		r, err := c.DecodeByte(b)
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// EncodeRune converts one rune to its charset byte.
// Returns ErrUnmappableRune if the charset has no representation for it.
func (c *Charmap) EncodeRune(r rune) (byte, error) {
	if r >= 0 && r < 0x80 {
		return byte(r), nil
	}
	if b, ok := c.fromRune[r]; ok {
		return b, nil
	}

	return 0, fmt.Errorf("%w: %q in %s", errs.ErrUnmappableRune, r, c.name)
}

// Encode converts a Go string to charset bytes.
//
// Encoding is strict: the first unmappable rune aborts with ErrUnmappableRune
// and no partial result is returned.
func (c *Charmap) Encode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := c.EncodeRune(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, nil
}

// IsControl reports whether the byte is an ASCII control code.
// Control codes are the same in every supported charset.
func (c *Charmap) IsControl(b byte) bool {
	return b <= 0x1F || b == 0x7F
}

// IsDigit reports whether the byte is a decimal digit.
func (c *Charmap) IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsAlphabetic reports whether the byte maps to a letter in this charset.
func (c *Charmap) IsAlphabetic(b byte) bool {
	r, err := c.DecodeByte(b)
	if err != nil {
		return false
	}

	return unicode.IsLetter(r)
}
