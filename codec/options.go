package codec

import (
	"fmt"

	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/options"
)

// Option represents a functional option for configuring a Codec.
// This is a type alias for the generic Option interface specialized for Codec.
type Option = options.Option[*Codec]

// WithPadding selects the fixed-length padding policy with the given pad
// character. Encoded output is always a multiple of the scheme's block size;
// short final groups are completed with the pad character.
//
// The pad character must be printable ASCII and must not collide with an
// alphabet symbol; New returns ErrInvalidPadChar otherwise.
func WithPadding(pad byte) Option {
	return options.NoError(func(c *Codec) {
		c.padding = PaddingFixed
		c.padChar = pad
	})
}

// WithNoPadding selects the no-pad policy. It is the default.
//
// No pad characters are ever emitted; decode accepts any input whose total
// bit count is consistent with a whole number of output bytes and fails with
// ErrTruncatedInput otherwise.
func WithNoPadding() Option {
	return options.NoError(func(c *Codec) {
		c.padding = PaddingNone
		c.padChar = 0
	})
}

// WithLenientDecode tolerates two classes of otherwise-invalid input:
// nonzero leftover bits in the final group, and a missing pad suffix under
// the fixed-length policy.
//
// Strict rejection is the default and should stay the default for
// security-sensitive decoding: a tolerant decoder lets callers smuggle
// hidden bits through the unused positions of the final symbol.
func WithLenientDecode() Option {
	return options.NoError(func(c *Codec) {
		c.lenient = true
	})
}

// WithLineWrap inserts a newline after every width encoded symbols.
// On decode the codec skips CR and LF characters wherever they appear.
//
// Width counts output symbols including pad characters and must be positive;
// New returns ErrInvalidWrapWidth otherwise.
func WithLineWrap(width int) Option {
	return options.New(func(c *Codec) error {
		if width <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWrapWidth, width)
		}
		c.wrapWidth = width

		return nil
	})
}
