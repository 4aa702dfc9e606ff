// Package errs defines the sentinel errors returned by the toon packages.
//
// Call sites wrap these values with additional context (offsets, counts, indices)
// using fmt.Errorf and the %w verb, so callers should test for them with errors.Is:
//
//	data, err := codec.Unmarshal(buf)
//	if errors.Is(err, errs.ErrTruncatedBuffer) {
//	    // request re-upload
//	}
//
// None of these conditions are fatal. The codec never retries and never logs;
// it returns the error and leaves the policy to the caller.
package errs

import "errors"

// Compression errors.
var (
	// ErrEmptyInput is returned when compression is requested on zero frames.
	ErrEmptyInput = errors.New("toon: no frames to compress")
	// ErrInvalidKeyframeInterval is returned when the keyframe interval is outside 1..65535.
	ErrInvalidKeyframeInterval = errors.New("toon: invalid keyframe interval")
	// ErrCountOverflow is returned when a count or size does not fit its wire field.
	ErrCountOverflow = errors.New("toon: count exceeds wire field range")
	// ErrInvalidFrame is returned when a pose frame does not carry exactly 33 landmarks.
	ErrInvalidFrame = errors.New("toon: invalid pose frame")
)

// Binary format errors.
var (
	// ErrUnsupportedVersion is returned when the version byte is not recognized.
	ErrUnsupportedVersion = errors.New("toon: unsupported format version")
	// ErrTruncatedBuffer is returned when a read would go past the end of the buffer.
	ErrTruncatedBuffer = errors.New("toon: truncated buffer")
	// ErrInvalidHeader is returned when header fields are inconsistent or out of range.
	ErrInvalidHeader = errors.New("toon: invalid header")
	// ErrInvalidEncodingMode is returned for an unknown compression code or mode name.
	ErrInvalidEncodingMode = errors.New("toon: invalid encoding mode")
)

// Decompression errors.
var (
	// ErrMalformedSequence is returned when a frame index has no keyframe and no
	// reachable delta chain, or when records overlap or overrun the frame count.
	ErrMalformedSequence = errors.New("toon: malformed frame sequence")
)

// Interchange errors.
var (
	// ErrInvalidBase64 is returned when base64 text cannot be decoded.
	ErrInvalidBase64 = errors.New("toon: invalid base64 payload")
	// ErrInvalidData is returned when JSON-shaped TOON data fails validation.
	ErrInvalidData = errors.New("toon: invalid data")
)

// Container errors.
var (
	// ErrInvalidContainer is returned when a sealed container header is missing or unknown.
	ErrInvalidContainer = errors.New("toon: invalid container")
	// ErrInvalidCompressionType is returned for an unknown container compression byte.
	ErrInvalidCompressionType = errors.New("toon: invalid compression type")
	// ErrChecksumMismatch is returned when the container payload fails its length or checksum check.
	ErrChecksumMismatch = errors.New("toon: checksum mismatch")
)
