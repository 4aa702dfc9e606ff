// Package compress provides the general purpose codecs used to shrink serialized
// TOON buffers inside a sealed container.
//
// TOON encoding already removes temporal redundancy between frames. What remains
// is the fixed 128-byte header, the zero padding byte of every landmark slot, and
// keyframes that repeat most of the previous keyframe. A second compression stage
// removes most of that.
//
// # Algorithms
//
//   - None (format.CompressionNone): pass-through, keeps the checksum guard only
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): fastest, lower ratio
//   - LZ4 (format.CompressionLZ4): fast decompression, block format without length
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(buf)
//
// GetCodec returns shared instances. Every codec is stateless apart from its
// internal sync.Pool of encoders, so the shared instances are safe for concurrent use.
//
// # Build Tags
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with cgo and
// the gozstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
package compress
