package codec

import (
	"fmt"

	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/pool"
)

// encodeState is the encode-direction bit packer.
//
// It accumulates input bytes into a bit buffer and emits one output symbol
// each time groupWidth bits are available, most-significant-bits-first. The
// residue (fewer than one full group) is carried between feed calls, which is
// what makes chunked encoding equal to one-shot encoding for any chunking.
//
// Both the one-shot Codec.Encode and EncodeSession run this state machine, so
// the incremental-equals-batch property holds by construction.
type encodeState struct {
	codec    *Codec
	bitBuf   uint64 // Bit accumulator; only the low bitCnt bits are live
	bitCnt   int    // Number of unconsumed bits in bitBuf, always < 8 + groupWidth
	col      int    // Symbols emitted on the current output line
	blockPos int    // Symbols emitted in the current block, in [0, blockSyms)
}

// feed consumes input bytes and appends one symbol per completed group to dst.
func (st *encodeState) feed(dst *pool.ByteBuffer, src []byte) {
	c := st.codec
	width := c.bits
	mask := byte(c.alpha.Len() - 1)

	for _, b := range src {
		st.bitBuf = st.bitBuf<<8 | uint64(b)
		st.bitCnt += 8

		for st.bitCnt >= width {
			st.bitCnt -= width
			st.emit(dst, c.alpha.Symbol(byte(st.bitBuf>>st.bitCnt)&mask))
		}
	}
}

// close flushes the bit residue and applies end-of-input padding rules.
//
// A partial final group is padded with zero bits on the right (MSB-first),
// then the fixed-length policy completes the block with pad characters.
func (st *encodeState) close(dst *pool.ByteBuffer) {
	c := st.codec

	if st.bitCnt > 0 {
		shift := c.bits - st.bitCnt
		mask := byte(c.alpha.Len() - 1)
		st.emit(dst, c.alpha.Symbol(byte(st.bitBuf<<shift)&mask))
		st.bitCnt = 0
	}

	if c.padding == PaddingFixed {
		for st.blockPos != 0 {
			st.emit(dst, c.padChar)
		}
	}
}

// emit appends one output character, maintaining line wrap and block position.
// The newline goes before the symbol so output never ends with a newline and
// wrapping stays correct across chunk boundaries.
func (st *encodeState) emit(dst *pool.ByteBuffer, sym byte) {
	c := st.codec
	if c.wrapWidth > 0 && st.col == c.wrapWidth {
		dst.AppendByte('\n')
		st.col = 0
	}

	dst.AppendByte(sym)
	st.col++
	st.blockPos++
	if st.blockPos == c.blockSyms {
		st.blockPos = 0
	}
}

// decodeState is the decode-direction bit packer.
//
// It mirrors encodeState: each accepted symbol contributes groupWidth bits to
// the accumulator and one byte is emitted every time 8 bits are available.
// Validation that depends on the whole input (block alignment, pad suffix
// shape, leftover bits) happens in close.
type decodeState struct {
	codec   *Codec
	bitBuf  uint64 // Bit accumulator; only the low bitCnt bits are live
	bitCnt  int    // Number of unconsumed bits in bitBuf, always < 8
	symbols int    // Data symbols consumed so far
	pads    int    // Pad characters consumed so far
}

// feed consumes input characters and appends one byte per 8 accumulated bits
// to dst. It rejects characters outside the alphabet and data symbols that
// appear after a pad character; whole-input validation is deferred to close.
func (st *decodeState) feed(dst *pool.ByteBuffer, src []byte) error {
	c := st.codec
	width := c.bits

	for _, ch := range src {
		if ch == '\n' || ch == '\r' {
			if c.wrapWidth > 0 {
				continue
			}

			return fmt.Errorf("%w: character %q", errs.ErrInvalidSymbol, ch)
		}

		if c.padding == PaddingFixed && ch == c.padChar {
			st.pads++
			continue
		}

		v, ok := c.alpha.Value(ch)
		if !ok {
			return fmt.Errorf("%w: character %q", errs.ErrInvalidSymbol, ch)
		}
		if st.pads > 0 {
			return fmt.Errorf("%w: data symbol %q after pad character", errs.ErrUnexpectedPadding, ch)
		}

		st.symbols++
		st.bitBuf = st.bitBuf<<width | uint64(v)
		st.bitCnt += width

		if st.bitCnt >= 8 {
			st.bitCnt -= 8
			dst.AppendByte(byte(st.bitBuf >> st.bitCnt))
		}
	}

	return nil
}

// close validates the end-of-input invariants for the codec's padding policy.
// It produces no output: a residue smaller than 8 bits never forms a byte.
func (st *decodeState) close() error {
	c := st.codec

	if c.padding == PaddingFixed {
		total := st.symbols + st.pads
		if (st.pads > 0 || !c.lenient) && total%c.blockSyms != 0 {
			return fmt.Errorf("%w: length %d is not a multiple of block size %d",
				errs.ErrTruncatedInput, total, c.blockSyms)
		}

		if st.pads > 0 {
			rem := st.symbols % c.blockSyms
			if rem == 0 || st.pads != c.blockSyms-rem {
				return fmt.Errorf("%w: %d pad characters after %d data symbols",
					errs.ErrMalformedPadding, st.pads, st.symbols)
			}
		}
	}

	if st.bitCnt >= c.bits {
		// More leftover bits than one partial group can carry: no encoder
		// output has this shape regardless of payload.
		if c.padding == PaddingFixed {
			return fmt.Errorf("%w: %d leftover bits in final group", errs.ErrMalformedPadding, st.bitCnt)
		}

		return fmt.Errorf("%w: %d leftover bits in final group", errs.ErrTruncatedInput, st.bitCnt)
	}

	if st.bitCnt > 0 && !c.lenient {
		if leftover := st.bitBuf & (1<<st.bitCnt - 1); leftover != 0 {
			return fmt.Errorf("%w: nonzero leftover bits 0b%b", errs.ErrMalformedPadding, leftover)
		}
	}

	return nil
}
