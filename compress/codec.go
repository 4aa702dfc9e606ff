package compress

import (
	"fmt"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/format"
)

// Compressor compresses a serialized TOON buffer for storage or transport.
//
// TOON buffers are small (a few hundred bytes to a few hundred kilobytes) and
// dominated by zero padding and repeated keyframe coordinates, so every general
// purpose codec here shrinks them further.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The returned slice is owned by the caller. The input slice is not modified,
	// although the no-op codec returns it unchanged.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same type.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original bytes. It returns an error when data is
	// corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by codecs that can decompress into a buffer
// of known size instead of guessing the expansion ratio.
type SizedDecompressor interface {
	// DecompressSize decompresses data whose original length is size.
	DecompressSize(data []byte, size int) ([]byte, error)
}

// maxDecodedSize caps how much any codec will expand a single payload to.
const maxDecodedSize = 128 * 1024 * 1024

// Codec combines both directions and reports the algorithm it implements.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

// CreateCodec returns a new Codec for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: What the codec is for, used in the error message
//
// Returns:
//   - Codec: Codec for the type
//   - error: ErrInvalidCompressionType for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %d", errs.ErrInvalidCompressionType, target, uint8(compressionType))
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: code %d", errs.ErrInvalidCompressionType, uint8(compressionType))
}
