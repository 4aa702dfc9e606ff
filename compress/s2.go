package compress

import (
	"fmt"

	"github.com/Stormrider66/toon/format"
	"github.com/klauspost/compress/s2"
)

// S2Compressor provides S2 (Snappy-compatible) compression, the fastest of the
// built-in codecs on both sides.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type returns format.CompressionS2.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes a single S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
