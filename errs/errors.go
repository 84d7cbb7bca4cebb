// Package errs defines the sentinel error values shared across basen packages.
//
// All errors are reported synchronously by the call that detects them and are
// recoverable: the caller can construct new, valid input (or a new session)
// and retry. Callers should match errors with errors.Is since most call sites
// wrap these sentinels with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Codec construction errors.
var (
	// ErrInvalidAlphabet indicates the supplied symbol sequence is not a
	// supported alphabet: its length is not a power of two in [2, 64], it
	// contains duplicate symbols, or it contains non-ASCII bytes.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidPadChar indicates the configured pad character collides with
	// an alphabet symbol or is not a printable ASCII character.
	ErrInvalidPadChar = errors.New("invalid pad character")

	// ErrInvalidWrapWidth indicates a non-positive line wrap width.
	ErrInvalidWrapWidth = errors.New("invalid wrap width")
)

// Decode errors.
var (
	// ErrInvalidSymbol indicates the decode input contains a character that is
	// neither an alphabet symbol nor a recognized pad character.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrMalformedPadding indicates the final group carries nonzero leftover
	// bits, or the pad suffix is inconsistent with a whole number of bytes.
	ErrMalformedPadding = errors.New("malformed padding")

	// ErrUnexpectedPadding indicates a pad character appeared before the end
	// of the data symbols.
	ErrUnexpectedPadding = errors.New("unexpected padding")

	// ErrTruncatedInput indicates the input length is inconsistent with a
	// whole number of output bytes under the codec's padding policy.
	ErrTruncatedInput = errors.New("truncated input")
)

// Session errors.
var (
	// ErrSessionClosed indicates Feed or Close was called on a streaming
	// session that has already been closed.
	ErrSessionClosed = errors.New("session already closed")
)

// Registry errors.
var (
	// ErrSchemeRegistered indicates the scheme name is already registered.
	ErrSchemeRegistered = errors.New("scheme already registered")

	// ErrSchemeNotFound indicates no codec is registered under the name.
	ErrSchemeNotFound = errors.New("scheme not found")

	// ErrInvalidSchemeName indicates an empty or otherwise unusable scheme name.
	ErrInvalidSchemeName = errors.New("invalid scheme name")

	// ErrHashCollision indicates two distinct scheme names hash to the same
	// 64-bit ID. Extremely unlikely in practice; registration fails so the
	// caller can pick a different name.
	ErrHashCollision = errors.New("scheme name hash collision")
)

// Charmap errors.
var (
	// ErrUndefinedByte indicates a byte with no assigned character in the
	// charset (the 0x80-0x9F window for the ISO 8859 family).
	ErrUndefinedByte = errors.New("undefined byte")

	// ErrUnmappableRune indicates a rune with no representation in the charset.
	ErrUnmappableRune = errors.New("unmappable rune")
)
