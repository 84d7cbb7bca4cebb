// Package alphabet provides immutable symbol tables for bit-aligned base-N encodings.
//
// An Alphabet maps symbol values (0..N-1) to output characters and back. The
// reverse lookup is a precomputed 256-entry table, since decode throughput is
// bounded by this step. Alphabet instances are immutable after construction
// and safe for concurrent use by any number of goroutines.
package alphabet

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/basen/errs"
)

// MaxSize is the largest supported alphabet size. Larger alphabets would need
// multi-byte output symbols, which the single-character contract excludes.
const MaxSize = 64

const noValue = -1

// Alphabet is an immutable mapping between symbol values and output characters.
//
// The alphabet size N must be a power of two in [2, 64]; each output symbol
// represents log2(N) bits. All symbols must be distinct printable ASCII
// characters so encoded output never collides with line wrapping or padding.
type Alphabet struct {
	symbols  [MaxSize]byte
	reverse  [256]int16 // Character → symbol value, noValue if not in alphabet
	size     int
	bitWidth int
	folded   bool
}

// New creates an alphabet from an ordered sequence of symbols.
//
// The sequence length must be a power of two in [2, 64] and every symbol must
// be a distinct printable ASCII character. Returns ErrInvalidAlphabet otherwise.
//
// Parameters:
//   - symbols: ordered output characters; the character at index i encodes value i
//
// Returns:
//   - *Alphabet: the constructed alphabet
//   - error: ErrInvalidAlphabet if the sequence is not a supported alphabet
func New(symbols string) (*Alphabet, error) {
	return build(symbols, false)
}

// NewFolded creates a case-insensitive alphabet.
//
// Encoding always emits the symbols as given; decoding accepts both the upper
// and lower case form of any letter. The sequence must remain unambiguous
// after folding: an alphabet containing both 'a' and 'A' is rejected with
// ErrInvalidAlphabet.
func NewFolded(symbols string) (*Alphabet, error) {
	return build(symbols, true)
}

func build(symbols string, folded bool) (*Alphabet, error) {
	n := len(symbols)
	if n < 2 || n > MaxSize || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: size %d is not a power of two in [2, %d]", errs.ErrInvalidAlphabet, n, MaxSize)
	}

	a := &Alphabet{
		size:     n,
		bitWidth: bits.TrailingZeros(uint(n)),
		folded:   folded,
	}
	for i := range a.reverse {
		a.reverse[i] = noValue
	}

	for i := 0; i < n; i++ {
		c := symbols[i]
		if c <= 0x20 || c >= 0x7f {
			return nil, fmt.Errorf("%w: symbol 0x%02x at index %d is not printable ASCII", errs.ErrInvalidAlphabet, c, i)
		}
		if a.reverse[c] != noValue {
			return nil, fmt.Errorf("%w: duplicate symbol %q", errs.ErrInvalidAlphabet, c)
		}

		a.symbols[i] = c
		a.reverse[c] = int16(i)

		if folded {
			if other, ok := foldCase(c); ok {
				if a.reverse[other] != noValue {
					return nil, fmt.Errorf("%w: symbol %q is ambiguous under case folding", errs.ErrInvalidAlphabet, c)
				}
				a.reverse[other] = int16(i)
			}
		}
	}

	return a, nil
}

// foldCase returns the opposite-case form of an ASCII letter.
func foldCase(c byte) (byte, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A', true
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a', true
	default:
		return 0, false
	}
}

// Symbol returns the output character for the given symbol value.
// The value must be in [0, Len()); this is a total function over that range.
func (a *Alphabet) Symbol(v byte) byte {
	return a.symbols[v]
}

// Value returns the symbol value for the given character and whether the
// character belongs to the alphabet. Lookup is O(1) via a precomputed table.
func (a *Alphabet) Value(c byte) (byte, bool) {
	v := a.reverse[c]
	if v == noValue {
		return 0, false
	}

	return byte(v), true
}

// Contains reports whether the character belongs to the alphabet
// (including case-folded forms for folded alphabets).
func (a *Alphabet) Contains(c byte) bool {
	return a.reverse[c] != noValue
}

// Len returns the alphabet size N.
func (a *Alphabet) Len() int {
	return a.size
}

// Bits returns the group width: the number of bits one output symbol represents.
func (a *Alphabet) Bits() int {
	return a.bitWidth
}

// Folded reports whether decode lookups are case-insensitive.
func (a *Alphabet) Folded() bool {
	return a.folded
}

// String returns the symbol sequence in value order.
func (a *Alphabet) String() string {
	return string(a.symbols[:a.size])
}
