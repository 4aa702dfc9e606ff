package compress

import "github.com/Stormrider66/toon/format"

// NoOpCompressor passes data through unchanged. A container sealed with it still
// gets the length and checksum guard without paying for compression.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
