package codec

import (
	"github.com/Stormrider66/toon/quant"
	"github.com/Stormrider66/toon/section"
)

// Header is the self-describing metadata of a compressed sequence.
//
// It embeds the wire header and adds the fields that are derived rather than
// stored: the fixed quantization bit-width and the compression ratio. Both are
// recomputed when a buffer is deserialized.
type Header struct {
	section.Header

	// QuantizationBits is the quantization bit-width, always 16.
	QuantizationBits uint8 `json:"quantizationBits" validate:"eq=16"`

	// CompressionRatio is OriginalSize / CompressedSize.
	CompressionRatio float64 `json:"compressionRatio" validate:"gte=0"`
}

// Data is the in-memory compressed aggregate.
//
// A Data value is owned by whichever call produced it. Decompression,
// serialization and stats never modify it, so it is safe for concurrent reads.
type Data struct {
	Header      Header               `json:"header"`
	Keyframes   []section.Keyframe   `json:"keyframes" validate:"required,min=1,max=65535,dive"`
	DeltaFrames []section.DeltaFrame `json:"deltaFrames" validate:"max=65535,dive"`
}

// LandmarkCount returns the number of retained landmarks per frame.
func (d *Data) LandmarkCount() int {
	return len(d.Header.LandmarkIndices)
}

// RLEFrames returns the number of frames covered by run-length extensions.
func (d *Data) RLEFrames() int {
	n := 0
	for i := range d.DeltaFrames {
		n += int(d.DeltaFrames[i].RunLength)
	}

	return n
}

// Size returns the exact serialized length of d in bytes.
func (d *Data) Size() int {
	return section.BufferSize(d.LandmarkCount(), len(d.Keyframes), len(d.DeltaFrames))
}

// newHeader derives the full header from the wire fields.
func newHeader(h section.Header) Header {
	return Header{
		Header:           h,
		QuantizationBits: quant.Bits,
		CompressionRatio: ratio(h.OriginalSize, h.CompressedSize),
	}
}

func ratio(original, compressed uint32) float64 {
	if compressed == 0 {
		return 0
	}

	return float64(original) / float64(compressed)
}
