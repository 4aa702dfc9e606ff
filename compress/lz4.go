package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Stormrider66/toon/format"
	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression.
//
// LZ4 blocks do not record their original length. Use DecompressSize when the
// length is known, as it is inside a sealed container.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type returns format.CompressionLZ4.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress compresses data as a single LZ4 block using a pooled lz4.Compressor.
//
// Returns:
//   - []byte: Compressed block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block of unknown original length.
//
// The buffer starts at 4x the compressed size and doubles on
// lz4.ErrInvalidSourceShortBuffer until it reaches 128MB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= maxDecodedSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}

	return nil, fmt.Errorf("lz4 decompression failed: %w", lz4.ErrInvalidSourceShortBuffer)
}

// DecompressSize decompresses an LZ4 block into a buffer of exactly size bytes.
//
// Returns:
//   - []byte: Decompressed data
//   - error: Decompression error, or a length error when the block does not
//     expand to exactly size bytes
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if size < 0 || size > maxDecodedSize {
		return nil, fmt.Errorf("lz4 decompression failed: invalid size %d", size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("lz4 decompression failed: got %d bytes, want %d", n, size)
	}

	return buf, nil
}
