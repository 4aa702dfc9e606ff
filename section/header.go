package section

import (
	"fmt"

	"github.com/Stormrider66/toon/endian"
	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/format"
	"github.com/Stormrider66/toon/landmark"
)

// Header represents the fixed-size 128-byte header at the start of a TOON buffer.
//
// LandmarkCount mirrors len(LandmarkIndices); both are kept so the JSON form
// carries the count explicitly. KeyframeCount and DeltaFrameCount declare how
// many records follow the header.
type Header struct {
	// Version is the format version, byte offset 0.
	Version uint8 `json:"version" validate:"eq=1"`

	// Mode is the encoding mode (compression code), byte offset 1.
	Mode format.EncodingMode `json:"compressionType" validate:"lte=2"`

	// LandmarkCount is the number of retained landmarks, byte offset 2-3.
	LandmarkCount uint16 `json:"landmarkCount" validate:"min=1,max=33"`

	// KeyframeInterval is the configured keyframe spacing in frames, byte offset 4-5.
	KeyframeInterval uint16 `json:"keyframeInterval" validate:"min=1"`

	// FrameCount is the total number of frames in the sequence, byte offset 6-9.
	FrameCount uint32 `json:"frameCount" validate:"min=1"`

	// Duration is the sequence length in seconds, byte offset 10-13.
	Duration float32 `json:"duration"`

	// OriginalSize is the conceptual float64 baseline size in bytes, byte offset 14-17.
	OriginalSize uint32 `json:"originalSize"`

	// CompressedSize is the padding-free encoded size in bytes, byte offset 18-21.
	CompressedSize uint32 `json:"compressedSize"`

	// KeyframeCount is the number of keyframe records, byte offset 22-23.
	KeyframeCount uint16 `json:"keyframeCount"`

	// DeltaFrameCount is the number of delta records, byte offset 24-25.
	DeltaFrameCount uint16 `json:"deltaFrameCount"`

	// LandmarkIndices lists the retained anatomical indices, one byte each from offset 26.
	LandmarkIndices []landmark.Index `json:"landmarkIndices" validate:"required,min=1,max=33,unique,dive,max=32"`
}

// Validate checks the structural invariants the binary layout depends on.
//
// Returns:
//   - error: ErrUnsupportedVersion, or ErrInvalidHeader wrapping the failed check
func (h *Header) Validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	if !h.Mode.Valid() {
		return fmt.Errorf("%w: %w: code %d", errs.ErrInvalidHeader, errs.ErrInvalidEncodingMode, uint8(h.Mode))
	}

	n := len(h.LandmarkIndices)
	if n == 0 || n > MaxLandmarks {
		return fmt.Errorf("%w: landmark count %d out of range 1..%d", errs.ErrInvalidHeader, n, MaxLandmarks)
	}

	if int(h.LandmarkCount) != n {
		return fmt.Errorf("%w: landmark count %d does not match %d indices", errs.ErrInvalidHeader, h.LandmarkCount, n)
	}

	for i, idx := range h.LandmarkIndices {
		if !idx.Valid() {
			return fmt.Errorf("%w: landmark index %d at slot %d", errs.ErrInvalidHeader, idx, i)
		}
	}

	if h.KeyframeInterval == 0 {
		return fmt.Errorf("%w: keyframe interval is zero", errs.ErrInvalidHeader)
	}

	return nil
}

// Bytes serializes the header into a new 128-byte slice.
//
// The header must be valid; call Validate first.
func (h *Header) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b, 0, engine)

	return b
}

// WriteToSlice writes the header into a pre-allocated slice and returns the next position.
//
// The caller guarantees data has at least HeaderSize bytes from offset. Bytes between
// the index list and offset+HeaderSize are zeroed.
//
// Parameters:
//   - data: Pre-allocated byte slice
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + HeaderSize)
func (h *Header) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+HeaderSize]

	b[offVersion] = h.Version
	b[offMode] = uint8(h.Mode)
	engine.PutUint16(b[offLandmarkCount:], uint16(len(h.LandmarkIndices))) //nolint: gosec
	engine.PutUint16(b[offKeyframeInterval:], h.KeyframeInterval)
	engine.PutUint32(b[offFrameCount:], h.FrameCount)
	endian.PutFloat32(engine, b[offDuration:], h.Duration)
	engine.PutUint32(b[offOriginalSize:], h.OriginalSize)
	engine.PutUint32(b[offCompressedSize:], h.CompressedSize)
	engine.PutUint16(b[offKeyframeCount:], h.KeyframeCount)
	engine.PutUint16(b[offDeltaFrameCount:], h.DeltaFrameCount)

	pos := IndicesOffset
	for _, idx := range h.LandmarkIndices {
		b[pos] = uint8(idx)
		pos++
	}
	clear(b[pos:])

	return offset + HeaderSize
}

// Parse parses the header from the start of a TOON buffer.
//
// The version byte is checked before any other field. Bytes past HeaderSize are
// ignored.
//
// Parameters:
//   - data: Byte slice containing the header (at least 128 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - error: ErrTruncatedBuffer, ErrUnsupportedVersion or ErrInvalidHeader
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, have %d", errs.ErrTruncatedBuffer, HeaderSize, len(data))
	}

	if data[offVersion] != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[offVersion])
	}

	h.Version = data[offVersion]
	h.Mode = format.EncodingMode(data[offMode])
	h.LandmarkCount = engine.Uint16(data[offLandmarkCount:])
	h.KeyframeInterval = engine.Uint16(data[offKeyframeInterval:])
	h.FrameCount = engine.Uint32(data[offFrameCount:])
	h.Duration = endian.Float32(engine, data[offDuration:])
	h.OriginalSize = engine.Uint32(data[offOriginalSize:])
	h.CompressedSize = engine.Uint32(data[offCompressedSize:])
	h.KeyframeCount = engine.Uint16(data[offKeyframeCount:])
	h.DeltaFrameCount = engine.Uint16(data[offDeltaFrameCount:])

	n := int(h.LandmarkCount)
	if n == 0 || n > MaxLandmarks {
		return fmt.Errorf("%w: landmark count %d out of range 1..%d", errs.ErrInvalidHeader, n, MaxLandmarks)
	}

	h.LandmarkIndices = make([]landmark.Index, n)
	for i := range h.LandmarkIndices {
		h.LandmarkIndices[i] = landmark.Index(data[IndicesOffset+i])
	}

	return h.Validate()
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 128 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrTruncatedBuffer, ErrUnsupportedVersion or ErrInvalidHeader
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	h := Header{}
	if err := h.Parse(data, engine); err != nil {
		return Header{}, err
	}

	return h, nil
}

// RecordsSize returns the byte size of the records the header declares.
func (h *Header) RecordsSize() int {
	n := len(h.LandmarkIndices)

	return int(h.KeyframeCount)*KeyframeSize(n) + int(h.DeltaFrameCount)*DeltaFrameSize(n)
}
