// Package basen provides a generic, extensible engine for bit-aligned base-N
// text encodings (base2 through base64) with one-shot and streaming APIs.
//
// Every scheme is a configuration of the same engine: an alphabet (which
// fixes the group width), a padding policy and optional decorations such as
// line wrapping. Codec instances are immutable and safely shared across
// goroutines; streaming sessions carry bit residue across arbitrarily-sized
// input chunks so that incremental output always equals one-shot output.
//
// # Core Features
//
//   - One engine for every power-of-two alphabet from base2 to base64
//   - RFC 4648 schemes prebuilt: Base64, Base64URL, Base32, Base32Hex, Base16
//   - Streaming sessions with exact chunking-independence guarantees
//   - Strict-by-default decoding: invalid symbols, malformed or misplaced
//     padding and truncated input are rejected, never repaired
//   - Hash-based scheme registry (64-bit xxHash64) for O(1) lookups
//
// # Basic Usage
//
// One-shot encoding and decoding with a prebuilt scheme:
//
//	text := basen.Base64.EncodeToString([]byte("Man")) // "TWFu"
//	raw, err := basen.Base64.DecodeString(text)
//
// Streaming over chunked input:
//
//	s := basen.Base64.NewEncodeSession()
//	for _, chunk := range chunks {
//	    part, _ := s.Feed(chunk)
//	    w.Write(part)
//	}
//	tail, _ := s.Close()
//	w.Write(tail)
//
// Custom schemes are built from an alphabet and options:
//
//	alpha, _ := alphabet.New("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-~")
//	c, _ := codec.New(alpha, codec.WithPadding('='))
//
// # Package Structure
//
// This package provides convenient top-level wrappers and prebuilt schemes.
// For fine-grained control use the alphabet and codec packages directly; the
// registry package maps scheme names to codec instances.
package basen

import (
	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/codec"
	"github.com/arloliu/basen/internal/hash"
	"github.com/arloliu/basen/registry"
)

// RFC 4648 alphabets, plus the degenerate octal and binary ones.
const (
	base64Symbols    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URLSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	base32Symbols    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	base32HexSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	base16Symbols    = "0123456789ABCDEF"
	base8Symbols     = "01234567"
	base2Symbols     = "01"
)

// StdPadChar is the pad character used by all prebuilt padded schemes.
const StdPadChar byte = '='

// Prebuilt codecs. All of them are immutable and safe for concurrent use.
var (
	// Base64 is the standard RFC 4648 base64 scheme with '=' padding.
	Base64 = mustCodec(base64Symbols, false, codec.WithPadding(StdPadChar))

	// Base64URL is the URL-safe RFC 4648 base64 variant with '=' padding.
	Base64URL = mustCodec(base64URLSymbols, false, codec.WithPadding(StdPadChar))

	// Base64RawURL is the URL-safe base64 variant without padding, as used in
	// JWTs and other length-delimited contexts.
	Base64RawURL = mustCodec(base64URLSymbols, false)

	// Base32 is the standard RFC 4648 base32 scheme with '=' padding.
	// Decoding is case-sensitive; wrap the alphabet with NewFolded for
	// case-insensitive handling.
	Base32 = mustCodec(base32Symbols, false, codec.WithPadding(StdPadChar))

	// Base32Hex is the RFC 4648 base32hex scheme (extended hex alphabet,
	// preserves sort order) with '=' padding.
	Base32Hex = mustCodec(base32HexSymbols, false, codec.WithPadding(StdPadChar))

	// Base16 is upper-case hexadecimal. Decoding accepts both cases.
	Base16 = mustCodec(base16Symbols, true)

	// Base8 is octal text encoding; 8 symbols represent 3 bytes, so short
	// inputs carry an '=' pad suffix.
	Base8 = mustCodec(base8Symbols, false, codec.WithPadding(StdPadChar))

	// Base2 is binary text encoding: one output character per bit.
	Base2 = mustCodec(base2Symbols, false)
)

// mustCodec builds a prebuilt scheme; the inputs are compile-time constants,
// so a failure is a programming error.
func mustCodec(symbols string, folded bool, opts ...codec.Option) *codec.Codec {
	var (
		alpha *alphabet.Alphabet
		err   error
	)
	if folded {
		alpha, err = alphabet.NewFolded(symbols)
	} else {
		alpha, err = alphabet.New(symbols)
	}
	if err != nil {
		panic(err)
	}

	c, err := codec.New(alpha, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *registry.Registry {
	r := registry.New()

	builtins := []struct {
		name string
		c    *codec.Codec
	}{
		{"base64", Base64},
		{"base64url", Base64URL},
		{"base64rawurl", Base64RawURL},
		{"base32", Base32},
		{"base32hex", Base32Hex},
		{"base16", Base16},
		{"base8", Base8},
		{"base2", Base2},
	}
	for _, b := range builtins {
		if err := r.Register(b.name, b.c); err != nil {
			panic(err)
		}
	}

	return r
}

// SchemeID converts a scheme name to its 64-bit hash identifier.
//
// basen uses xxHash64 to convert scheme names to fixed-size IDs for O(1)
// registry lookups. The hash is deterministic: the same name always produces
// the same ID, so callers can pre-compute IDs for frequently-used schemes.
//
// Example:
//
//	id := basen.SchemeID("base64")
//	c, err := basen.LookupID(id)
func SchemeID(name string) uint64 {
	return hash.ID(name)
}

// Register adds a codec to the default registry under the given scheme name.
//
// The prebuilt schemes are pre-registered as "base64", "base64url",
// "base64rawurl", "base32", "base32hex", "base16", "base8" and "base2".
//
// Returns ErrSchemeRegistered if the name is taken, ErrInvalidSchemeName for
// an empty name or nil codec, and ErrHashCollision if a different registered
// name hashes to the same ID.
func Register(name string, c *codec.Codec) error {
	return defaultRegistry.Register(name, c)
}

// Lookup returns the codec registered under the given scheme name in the
// default registry. Returns ErrSchemeNotFound for unknown names.
func Lookup(name string) (*codec.Codec, error) {
	return defaultRegistry.Lookup(name)
}

// LookupID returns the codec registered under the given scheme ID in the
// default registry. The ID is the xxHash64 of the scheme name.
func LookupID(id uint64) (*codec.Codec, error) {
	return defaultRegistry.LookupID(id)
}

// Schemes returns the scheme names in the default registry in registration
// order, starting with the prebuilt schemes.
func Schemes() []string {
	return defaultRegistry.Schemes()
}

// EncodeToString encodes src with the named scheme from the default registry.
//
// Returns ErrSchemeNotFound if the scheme is not registered.
//
// Example:
//
//	text, err := basen.EncodeToString("base32", data)
func EncodeToString(scheme string, src []byte) (string, error) {
	c, err := Lookup(scheme)
	if err != nil {
		return "", err
	}

	return c.EncodeToString(src), nil
}

// DecodeString decodes s with the named scheme from the default registry.
//
// Returns ErrSchemeNotFound if the scheme is not registered, or a decode
// error from the codec's taxonomy for invalid input.
func DecodeString(scheme string, s string) ([]byte, error) {
	c, err := Lookup(scheme)
	if err != nil {
		return nil, err
	}

	return c.DecodeString(s)
}
