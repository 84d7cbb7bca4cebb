package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_AppendByte(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.AppendByte('a')
	bb.AppendByte('b')
	require.Equal(t, 2, bb.Len())
	require.Equal(t, []byte("ab"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())

	oldCap := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, oldCap, bb.Cap()) // Memory retained for reuse
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("abcd"))

	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1024)
	require.Equal(t, []byte("abcd"), bb.Bytes()) // Existing data preserved
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("stream"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)
	require.Equal(t, "stream", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	// Buffers coming back from the pool are always empty.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // Exceeds threshold; must not panic, buffer is discarded

	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 1024)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(16, 64)
	require.NotPanics(t, func() { p.Put(nil) })
}
