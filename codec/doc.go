// Package codec implements the generic base-N encoding engine.
//
// A Codec composes an alphabet, a bit packer and a padding policy into one
// scheme (base64, base32, hex, ...). Each scheme is data, not a subclass: the
// same engine runs every power-of-two alphabet from base2 to base64.
//
// # One-Shot Usage
//
//	alpha, _ := alphabet.New("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
//	c, _ := codec.New(alpha, codec.WithPadding('='))
//
//	text := c.EncodeToString([]byte("Man")) // "TWFu"
//	raw, err := c.DecodeString(text)        // []byte("Man")
//
// # Streaming Usage
//
// Streaming sessions accept input in arbitrary-sized chunks and carry bit
// residue across chunk boundaries. The concatenated output of Feed calls
// followed by Close is byte-for-byte identical to the one-shot result for the
// concatenated input; both paths run the same state machine.
//
//	s := c.NewEncodeSession()
//	part1, _ := s.Feed(chunk1) // valid until the next Feed/Close call
//	part2, _ := s.Feed(chunk2)
//	tail, _ := s.Close()
//
// # Concurrency
//
// Codec instances are immutable after construction and safe for concurrent
// use by any number of goroutines. Sessions are single-owner: a session must
// not be used from more than one goroutine at a time.
package codec
