// Package toon compresses sequences of 3D skeletal pose frames into the compact
// TOON binary format.
//
// TOON is lossy then lossless: landmark coordinates are quantized to 16 bits
// (visibility to 8), then consecutive frames are stored as periodic keyframes
// plus small signed deltas, and runs of unchanged frames collapse into a single
// run-length extended delta record.
//
// # Basic Usage
//
// Compressing pose frames:
//
//	import "github.com/Stormrider66/toon"
//
//	data, err := toon.Compress(frames)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(toon.Stats(data))
//
// Serializing for storage or transport:
//
//	buf, _ := toon.Serialize(data)    // fixed little-endian binary layout
//	text, _ := toon.ToBase64(data)    // for embedding in JSON documents
//	sealed, _ := toon.Seal(data, format.CompressionZstd)
//
// Reconstructing frames:
//
//	data, _ = toon.Deserialize(buf)
//	frames, err := toon.Decompress(data)
//
// Decompressed frames always carry 33 landmarks. Landmarks that were not
// retained at compression time decode as zero placeholders.
//
// # Options
//
// Compression defaults to the 16 important landmarks, a keyframe every 30
// frames and run-length encoding enabled:
//
//	data, err := toon.Compress(frames,
//	    codec.WithImportantLandmarksOnly(false),
//	    codec.WithKeyframeInterval(15),
//	)
//
// # Package Structure
//
// This package wraps the codec and container packages for the common cases.
// Use codec.NewEncoder for incremental compression and codec.NewDecoder for
// decoding a frame range.
package toon

import (
	"github.com/Stormrider66/toon/codec"
	"github.com/Stormrider66/toon/container"
	"github.com/Stormrider66/toon/format"
	"github.com/Stormrider66/toon/pose"
)

// Compress quantizes and delta-encodes a pose sequence.
//
// Parameters:
//   - frames: Input frames in time order, each with 33 landmarks
//   - opts: Optional configuration functions (see codec.EncoderOption)
//
// Returns:
//   - *codec.Data: The compressed sequence
//   - error: ErrEmptyInput for no frames, ErrInvalidFrame for a frame without
//     33 landmarks, or an option error
//
// Available options:
//   - codec.WithImportantLandmarksOnly(true|false)
//   - codec.WithKeyframeInterval(1..65535)
//   - codec.WithRLE(true|false)
//
// Example:
//
//	data, err := toon.Compress(frames, codec.WithKeyframeInterval(15))
//	if err != nil {
//	    return err
//	}
func Compress(frames []pose.Frame, opts ...codec.EncoderOption) (*codec.Data, error) {
	return codec.Compress(frames, opts...)
}

// CompressWithOptions compresses frames using the plain-data options form,
// typically decoded from a JSON request or a config file.
//
// Example:
//
//	var o codec.Options
//	if err := json.Unmarshal(req, &o); err != nil { // absent keys keep their defaults
//	    return err
//	}
//	data, err := toon.CompressWithOptions(frames, o)
func CompressWithOptions(frames []pose.Frame, o codec.Options) (*codec.Data, error) {
	return codec.Compress(frames, o.EncoderOptions()...)
}

// Decompress reconstructs every frame of a compressed sequence.
//
// Frames always carry 33 landmarks; landmarks that were not retained decode as
// zero placeholders. Coordinates are within half a quantization step of the
// input.
//
// Returns:
//   - []pose.Frame: Header.FrameCount frames
//   - error: ErrMalformedSequence if the records do not cover the sequence
//
// Example:
//
//	frames, err := toon.Decompress(data)
func Decompress(d *codec.Data) ([]pose.Frame, error) {
	return codec.Decompress(d)
}

// Serialize writes d in the fixed little-endian binary layout: a 128-byte
// header followed by keyframe and delta records in frame order.
//
// Example:
//
//	buf, err := toon.Serialize(data)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("squat.toon", buf, 0o644)
func Serialize(d *codec.Data) ([]byte, error) {
	return codec.Marshal(d)
}

// Deserialize parses a buffer produced by Serialize.
//
// Returns:
//   - *codec.Data: The parsed sequence, equal to the serialized one
//   - error: ErrTruncatedBuffer, ErrUnsupportedVersion or ErrInvalidHeader
func Deserialize(buf []byte) (*codec.Data, error) {
	return codec.Unmarshal(buf)
}

// ToBase64 serializes d and encodes it as standard padded base64, for
// embedding in JSON documents.
func ToBase64(d *codec.Data) (string, error) {
	return codec.ToBase64(d)
}

// FromBase64 decodes text produced by ToBase64.
//
// Returns:
//   - *codec.Data: The parsed sequence
//   - error: ErrInvalidBase64 for bad text, otherwise a Deserialize error
func FromBase64(s string) (*codec.Data, error) {
	return codec.FromBase64(s)
}

// Stats summarizes frame counts, sizes and the compression ratio of d.
//
// Example:
//
//	fmt.Println(toon.Stats(data)) // 90 frames in 2.97s, 16 landmarks, mode hybrid: ...
func Stats(d *codec.Data) codec.Stats {
	return codec.GetStats(d)
}
// Seal serializes d into a checksummed container compressed with ct.
func Seal(d *codec.Data, ct format.CompressionType) ([]byte, error) {
	return container.SealData(d, ct)
}

// Open verifies a sealed container and parses the data inside.
func Open(b []byte) (*codec.Data, error) {
	return container.OpenData(b)
}
