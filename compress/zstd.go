package compress

import (
	"fmt"

	"github.com/Stormrider66/toon/format"
)

// ZstdCompressor provides Zstandard compression, the best ratio of the built-in
// codecs. It suits archived sessions where buffers are written once and read rarely.
//
// The pure Go implementation is used unless the module is built with cgo and the
// gozstd build tag, in which case the libzstd binding is used instead. Both produce
// standard zstd frames and read each other's output.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	c := NewZstdCompressor()
//	packed, err := c.Compress(buf)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}

// DecompressSize decompresses a zstd frame whose original length is size,
// decoding into a single buffer of exactly that capacity.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if size == 0 && len(data) == 0 {
		return nil, nil
	}
	if size < 0 || size > maxDecodedSize {
		return nil, fmt.Errorf("zstd decompression failed: invalid size %d", size)
	}

	out, err := c.decodeInto(make([]byte, 0, size), data)
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, fmt.Errorf("zstd decompression failed: got %d bytes, want %d", len(out), size)
	}

	return out, nil
}
