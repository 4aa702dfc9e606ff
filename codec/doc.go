// Package codec compresses pose landmark sequences into TOON data and back.
//
// # Compression
//
// Each frame is reduced to the retained landmarks, quantized to 16-bit integers,
// and written either as a keyframe (absolute values) or as a delta record
// (differences from the previous frame). With RLE enabled, a run of unchanged
// frames extends the run length of the previous delta record instead of adding
// records.
//
//	data, err := codec.Compress(frames,
//	    codec.WithKeyframeInterval(30),
//	    codec.WithImportantLandmarksOnly(true),
//	)
//
// Keyframes sit at every multiple of the keyframe interval, plus wherever a
// change between consecutive frames is too large for a delta record.
//
// # Decompression
//
// Decompress replays the records and returns exactly Header.FrameCount frames.
// Landmarks that were not retained come back as zero placeholders. Records that
// leave a frame undescribed, describe it twice, or overrun the frame count are
// rejected with errs.ErrMalformedSequence before any frame is produced.
//
// # Interchange
//
// Marshal and Unmarshal convert Data to and from the fixed little-endian binary
// layout described in package section; ToBase64 and FromBase64 wrap the same
// buffer as base64 text. ParseJSON accepts the JSON form and runs Validate on it.
//
// # Errors
//
// Every error wraps a sentinel from package errs. The package does not log.
package codec
