package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb.B)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("toon"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = bb.Write([]byte(" data"))
	require.NoError(t, err)
	require.Equal(t, []byte("toon data"), bb.Bytes())
	require.Equal(t, 9, bb.Len())

	c := cap(bb.B)
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, c, cap(bb.B))
}

func TestByteBufferPool(t *testing.T) {
	t.Run("Get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)

		bb := p.Get()
		require.NotNil(t, bb)
		_, _ = bb.Write([]byte("stale"))
		p.Put(bb)

		bb = p.Get()
		require.Equal(t, 0, bb.Len())
		p.Put(bb)
	})

	t.Run("Put ignores nil", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("Oversized buffers are discarded", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)

		bb := p.Get()
		_, _ = bb.Write(make([]byte, 32))
		p.Put(bb)

		// a dropped buffer is never handed out again
		next := p.Get()
		require.NotSame(t, bb, next)
		require.Equal(t, 0, next.Len())
	})

	t.Run("Concurrent access", func(t *testing.T) {
		var wg sync.WaitGroup
		for _i := 0; _i < 32; _i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bb := GetSealBuffer()
				_, _ = bb.Write(make([]byte, 944))
				PutSealBuffer(bb)
			}()
		}
		wg.Wait()
	})
}

func BenchmarkSealBuffer_GetWritePut(b *testing.B) {
	data := make([]byte, 944)
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		bb := GetSealBuffer()
		_, _ = bb.Write(data)
		PutSealBuffer(bb)
	}
}
