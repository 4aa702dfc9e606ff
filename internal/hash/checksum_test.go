package hash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"Empty", nil, 0xef46db3751d8e999},
		{"Short", []byte("test"), 0x4fdcca5ddb678139},
		{"Long", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
		{"Another", []byte("another test string"), 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.sum, Checksum(tt.data))
			require.True(t, Verify(tt.data, tt.sum))
		})
	}
}

func TestVerify(t *testing.T) {
	data := randBytes(944)
	sum := Checksum(data)
	require.True(t, Verify(data, sum))

	data[500] ^= 0x01
	require.False(t, Verify(data, sum))
	require.False(t, Verify(data[:10], sum))
}

func randBytes(n int) []byte {
	r := rand.New(rand.NewSource(1))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Uint32())
	}

	return b
}

func BenchmarkChecksum(b *testing.B) {
	data := randBytes(944)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		Checksum(data)
	}
}
