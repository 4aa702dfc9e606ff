package section

import (
	"fmt"

	"github.com/Stormrider66/toon/endian"
	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/quant"
)

// DeltaFrame is a record holding per-landmark differences from the immediately
// preceding frame.
//
// A RunLength of N > 0 means the same deltas also describe the next N frames,
// so the record covers N+1 consecutive frames starting at FrameIndex.
//
// Wire layout (8 + 8×L bytes):
//
//	Bytes  | Field          | Type
//	-------|----------------|------
//	0-3    | FrameIndex     | u32
//	4-5    | TimestampDelta | u16, milliseconds
//	6-7    | RunLength      | u16
//	8+8i   | DX             | i16
//	10+8i  | DY             | i16
//	12+8i  | DZ             | i16
//	14+8i  | DV             | i8
//	15+8i  | (pad)          | u8
type DeltaFrame struct {
	// FrameIndex is the first frame this record describes.
	FrameIndex uint32 `json:"frameIndex"`

	// TimestampDelta is the time since the preceding frame in milliseconds.
	TimestampDelta uint16 `json:"timestampDelta"`

	// RunLength is the number of additional frames repeating the same deltas.
	RunLength uint16 `json:"runLength,omitempty"`

	// Deltas holds one delta per retained index, in header order.
	Deltas []quant.Delta `json:"deltas" validate:"required,min=1,max=33"`
}

// Covers returns the number of frames the record describes.
func (d *DeltaFrame) Covers() int {
	return int(d.RunLength) + 1
}

// Size returns the on-wire size of the record.
func (d *DeltaFrame) Size() int {
	return DeltaFrameSize(len(d.Deltas))
}

// WriteToSlice writes the record to a pre-allocated slice and returns the next position.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for Size() bytes at offset)
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + Size())
func (d *DeltaFrame) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint32(data[offset:offset+4], d.FrameIndex)
	engine.PutUint16(data[offset+4:offset+6], d.TimestampDelta)
	engine.PutUint16(data[offset+6:offset+8], d.RunLength)

	pos := offset + DeltaFramePrefixSize
	for _, dl := range d.Deltas {
		endian.PutInt16(engine, data[pos:pos+2], dl.DX)
		endian.PutInt16(engine, data[pos+2:pos+4], dl.DY)
		endian.PutInt16(engine, data[pos+4:pos+6], dl.DZ)
		data[pos+6] = byte(dl.DV)
		data[pos+7] = 0
		pos += LandmarkSize
	}

	return pos
}

// ParseDeltaFrame parses a delta record carrying landmarkCount deltas from the
// start of data.
//
// Parameters:
//   - data: Byte slice positioned at the record
//   - landmarkCount: Number of landmarks per record, from the header
//   - engine: Endian engine for byte order
//
// Returns:
//   - DeltaFrame: Parsed record
//   - error: ErrTruncatedBuffer if data is shorter than the record
func ParseDeltaFrame(data []byte, landmarkCount int, engine endian.EndianEngine) (DeltaFrame, error) {
	size := DeltaFrameSize(landmarkCount)
	if len(data) < size {
		return DeltaFrame{}, fmt.Errorf("%w: delta record needs %d bytes, have %d", errs.ErrTruncatedBuffer, size, len(data))
	}

	d := DeltaFrame{
		FrameIndex:     engine.Uint32(data[0:4]),
		TimestampDelta: engine.Uint16(data[4:6]),
		RunLength:      engine.Uint16(data[6:8]),
		Deltas:         make([]quant.Delta, landmarkCount),
	}

	pos := DeltaFramePrefixSize
	for i := range d.Deltas {
		d.Deltas[i] = quant.Delta{
			DX: endian.Int16(engine, data[pos:pos+2]),
			DY: endian.Int16(engine, data[pos+2:pos+4]),
			DZ: endian.Int16(engine, data[pos+4:pos+6]),
			DV: int8(data[pos+6]),
		}
		pos += LandmarkSize
	}

	return d, nil
}
