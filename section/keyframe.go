package section

import (
	"fmt"

	"github.com/Stormrider66/toon/endian"
	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/quant"
)

// Keyframe is a self-contained record holding the absolute quantized landmarks of
// one frame.
//
// Wire layout (8 + 8×L bytes):
//
//	Bytes  | Field      | Type
//	-------|------------|------
//	0-3    | FrameIndex | u32
//	4-7    | Timestamp  | f32
//	8+8i   | X          | u16
//	10+8i  | Y          | u16
//	12+8i  | Z          | i16
//	14+8i  | V          | u8
//	15+8i  | (pad)      | u8
type Keyframe struct {
	// FrameIndex is the 0-based position of the frame in the sequence.
	FrameIndex uint32 `json:"frameIndex"`

	// Timestamp is the original timestamp in seconds.
	Timestamp float32 `json:"timestamp"`

	// Landmarks holds one quantized landmark per retained index, in header order.
	Landmarks []quant.Landmark `json:"landmarks" validate:"required,min=1,max=33"`
}

// Size returns the on-wire size of the record.
func (k *Keyframe) Size() int {
	return KeyframeSize(len(k.Landmarks))
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
func (k *Keyframe) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint32(data[offset:offset+4], k.FrameIndex)
	endian.PutFloat32(engine, data[offset+4:offset+8], k.Timestamp)

	pos := offset + KeyframePrefixSize
	for _, l := range k.Landmarks {
		engine.PutUint16(data[pos:pos+2], l.X)
		engine.PutUint16(data[pos+2:pos+4], l.Y)
		endian.PutInt16(engine, data[pos+4:pos+6], l.Z)
		data[pos+6] = l.V
		data[pos+7] = 0
		pos += LandmarkSize
	}

	return pos
}

// ParseKeyframe parses a keyframe record carrying landmarkCount landmarks from the
// start of data.
//
// Parameters:
//   - data: Byte slice positioned at the record
//   - landmarkCount: Number of landmarks per record, from the header
//   - engine: Endian engine for byte order
//
// Returns:
//   - Keyframe: Parsed record
//   - error: ErrTruncatedBuffer if data is shorter than the record
func ParseKeyframe(data []byte, landmarkCount int, engine endian.EndianEngine) (Keyframe, error) {
	size := KeyframeSize(landmarkCount)
	if len(data) < size {
		return Keyframe{}, fmt.Errorf("%w: keyframe needs %d bytes, have %d", errs.ErrTruncatedBuffer, size, len(data))
	}

	k := Keyframe{
		FrameIndex: engine.Uint32(data[0:4]),
		Timestamp:  endian.Float32(engine, data[4:8]),
		Landmarks:  make([]quant.Landmark, landmarkCount),
	}

	pos := KeyframePrefixSize
	for i := range k.Landmarks {
		k.Landmarks[i] = quant.Landmark{
			X: engine.Uint16(data[pos : pos+2]),
			Y: engine.Uint16(data[pos+2 : pos+4]),
			Z: endian.Int16(engine, data[pos+4:pos+6]),
			V: data[pos+6],
		}
		pos += LandmarkSize
	}

	return k, nil
}
