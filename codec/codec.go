package codec

import (
	"fmt"

	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/options"
	"github.com/arloliu/basen/internal/pool"
)

// Codec composes an alphabet, a bit packer and a padding policy into one
// encoding scheme.
//
// A Codec is immutable after construction and safe for concurrent use: the
// same instance can serve any number of simultaneous one-shot calls and
// streaming sessions without locking.
type Codec struct {
	alpha      *alphabet.Alphabet
	padding    PaddingType
	padChar    byte
	lenient    bool
	wrapWidth  int
	bits       int // Group width, cached from the alphabet
	blockSyms  int // Symbols per block: lcm(8, bits) / bits
	blockBytes int // Bytes per block: lcm(8, bits) / 8
}

// New creates a codec from an alphabet and configuration options.
//
// The default configuration is the no-pad policy with strict decoding and no
// line wrapping.
//
// Parameters:
//   - alpha: the symbol table; its size determines the group width
//   - opts: optional configuration (WithPadding, WithNoPadding,
//     WithLenientDecode, WithLineWrap)
//
// Returns:
//   - *Codec: the constructed codec
//   - error: ErrInvalidAlphabet, ErrInvalidPadChar or ErrInvalidWrapWidth if
//     the configuration is invalid
func New(alpha *alphabet.Alphabet, opts ...Option) (*Codec, error) {
	if alpha == nil {
		return nil, fmt.Errorf("%w: nil alphabet", errs.ErrInvalidAlphabet)
	}

	c := &Codec{
		alpha:   alpha,
		padding: PaddingNone,
		bits:    alpha.Bits(),
	}

	// Block size: the smallest symbol count representing a whole number of
	// input bytes. lcm(8, bits) with bits in 1..6.
	totalBits := 8 * c.bits / gcd(8, c.bits)
	c.blockSyms = totalBits / c.bits
	c.blockBytes = totalBits / 8

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.padding == PaddingFixed {
		if c.padChar <= 0x20 || c.padChar >= 0x7f {
			return nil, fmt.Errorf("%w: 0x%02x is not printable ASCII", errs.ErrInvalidPadChar, c.padChar)
		}
		if c.alpha.Contains(c.padChar) {
			return nil, fmt.Errorf("%w: %q is an alphabet symbol", errs.ErrInvalidPadChar, c.padChar)
		}
	}

	return c, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Alphabet returns the codec's symbol table.
func (c *Codec) Alphabet() *alphabet.Alphabet {
	return c.alpha
}

// Padding returns the codec's padding policy.
func (c *Codec) Padding() PaddingType {
	return c.padding
}

// PadChar returns the pad character, or 0 under the no-pad policy.
func (c *Codec) PadChar() byte {
	return c.padChar
}

// Bits returns the group width: bits represented by one output symbol.
func (c *Codec) Bits() int {
	return c.bits
}

// BlockSymbols returns the number of output symbols representing a whole
// number of input bytes with no padding.
func (c *Codec) BlockSymbols() int {
	return c.blockSyms
}

// BlockBytes returns the number of input bytes per block.
func (c *Codec) BlockBytes() int {
	return c.blockBytes
}

// EncodedLen returns the exact encoded length in bytes for n input bytes,
// including pad characters and inserted newlines. It is a pure function of n
// and the codec configuration.
func (c *Codec) EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}

	var symbols int
	if c.padding == PaddingFixed {
		symbols = (n + c.blockBytes - 1) / c.blockBytes * c.blockSyms
	} else {
		symbols = (n*8 + c.bits - 1) / c.bits
	}

	if c.wrapWidth > 0 {
		symbols += (symbols - 1) / c.wrapWidth
	}

	return symbols
}

// DecodedLen returns the maximum number of bytes that decoding n input
// characters can produce. The actual output may be shorter when the input
// contains pad characters or newlines.
func (c *Codec) DecodedLen(n int) int {
	if n <= 0 {
		return 0
	}

	return n * c.bits / 8
}

// Encode encodes src and returns the encoded text as a new byte slice.
//
// Encode is a total function over any finite byte sequence including the
// empty one; the output length equals EncodedLen(len(src)).
func (c *Codec) Encode(src []byte) []byte {
	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)
	buf.Grow(c.EncodedLen(len(src)))

	st := encodeState{codec: c}
	st.feed(buf, src)
	st.close(buf)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// EncodeToString encodes src and returns the encoded text as a string.
func (c *Codec) EncodeToString(src []byte) string {
	return string(c.Encode(src))
}

// Decode decodes src and returns the raw bytes as a new slice.
//
// Decoding is strict by default: any input violating alphabet or padding
// invariants is rejected with one of ErrInvalidSymbol, ErrMalformedPadding,
// ErrUnexpectedPadding or ErrTruncatedInput, and no partial result is
// returned. For every byte sequence b, Decode(Encode(b)) returns b.
func (c *Codec) Decode(src []byte) ([]byte, error) {
	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)
	buf.Grow(c.DecodedLen(len(src)))

	st := decodeState{codec: c}
	if err := st.feed(buf, src); err != nil {
		return nil, err
	}
	if err := st.close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeString decodes the encoded text s and returns the raw bytes.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	return c.Decode([]byte(s))
}
