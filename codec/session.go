package codec

import (
	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/pool"
)

// EncodeSession is a stateful streaming encoder over one codec.
//
// A session accepts input in arbitrary-sized chunks and produces output
// incrementally: each Feed call returns the symbols completed by the newly
// available bits, and the bit residue is carried to the next call. The
// concatenation of all Feed outputs plus the Close output equals the one-shot
// encoding of the concatenated input, for every possible chunking.
//
// Sessions are single-owner and must not be used concurrently. A session
// becomes unusable after Close; further calls return ErrSessionClosed.
type EncodeSession struct {
	state encodeState
	buf   *pool.ByteBuffer
}

// NewEncodeSession opens a streaming encode session.
//
// The session borrows a pooled output buffer that is returned to the pool on
// Close. Callers that abandon a session without closing it simply lose the
// buffer to the garbage collector.
func (c *Codec) NewEncodeSession() *EncodeSession {
	return &EncodeSession{
		state: encodeState{codec: c},
		buf:   pool.GetCodecBuffer(),
	}
}

// Feed encodes one input chunk and returns the output produced by it.
//
// The returned slice references the session's internal buffer and is only
// valid until the next Feed or Close call; callers needing to retain it must
// copy. Feeding an empty chunk is valid and returns an empty slice.
//
// Returns ErrSessionClosed if the session has been closed.
func (s *EncodeSession) Feed(chunk []byte) ([]byte, error) {
	if s.buf == nil {
		return nil, errs.ErrSessionClosed
	}

	s.buf.Reset()
	s.state.feed(s.buf, chunk)

	return s.buf.Bytes(), nil
}

// Close flushes the residual bits, applies end-of-input padding rules and
// returns the final output as a new slice. The session transitions to the
// closed state and its buffer returns to the pool.
//
// Returns ErrSessionClosed if called twice.
func (s *EncodeSession) Close() ([]byte, error) {
	if s.buf == nil {
		return nil, errs.ErrSessionClosed
	}

	s.buf.Reset()
	s.state.close(s.buf)

	out := make([]byte, s.buf.Len())
	copy(out, s.buf.Bytes())

	pool.PutCodecBuffer(s.buf)
	s.buf = nil

	return out, nil
}

// DecodeSession is a stateful streaming decoder over one codec.
//
// It mirrors EncodeSession: Feed accepts encoded text in arbitrary-sized
// chunks and returns the bytes completed by them, carrying bit residue and
// padding state across chunk boundaries. Whole-input validation (block
// alignment, pad suffix shape, leftover bits) runs on Close.
//
// A decode error is terminal: the session releases its buffer and every
// subsequent Feed or Close call returns the same error. Sessions are
// single-owner and must not be used concurrently.
type DecodeSession struct {
	state decodeState
	buf   *pool.ByteBuffer
	err   error
}

// NewDecodeSession opens a streaming decode session.
func (c *Codec) NewDecodeSession() *DecodeSession {
	return &DecodeSession{
		state: decodeState{codec: c},
		buf:   pool.GetCodecBuffer(),
	}
}

// Feed decodes one chunk of encoded text and returns the bytes it completed.
//
// The returned slice references the session's internal buffer and is only
// valid until the next Feed or Close call. On a decode error no output is
// returned for the chunk and the session becomes unusable.
//
// Returns ErrSessionClosed if the session has been closed, or the first
// decode error if one already occurred.
func (s *DecodeSession) Feed(chunk []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.buf == nil {
		return nil, errs.ErrSessionClosed
	}

	s.buf.Reset()
	if err := s.state.feed(s.buf, chunk); err != nil {
		s.fail(err)
		return nil, err
	}

	return s.buf.Bytes(), nil
}

// Close validates the end-of-input invariants and finalizes the session.
//
// Decoding never holds back whole bytes, so Close returns an empty slice on
// success; it exists to surface ErrMalformedPadding and ErrTruncatedInput,
// which are only detectable once the input is known to be complete.
//
// Returns ErrSessionClosed if called twice, or the first decode error if one
// already occurred.
func (s *DecodeSession) Close() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.buf == nil {
		return nil, errs.ErrSessionClosed
	}

	if err := s.state.close(); err != nil {
		s.fail(err)
		return nil, err
	}

	pool.PutCodecBuffer(s.buf)
	s.buf = nil

	return []byte{}, nil
}

// fail records the terminal error and releases the pooled buffer.
func (s *DecodeSession) fail(err error) {
	s.err = err
	pool.PutCodecBuffer(s.buf)
	s.buf = nil
}
