package encoding

import (
	"fmt"
	"math"
	"slices"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/landmark"
	"github.com/Stormrider66/toon/pose"
	"github.com/Stormrider66/toon/quant"
	"github.com/Stormrider66/toon/section"
)

// MaxRunLength is the largest run a single delta record can carry.
const MaxRunLength = math.MaxUint16

// DeltaRLEEncoder decides, frame by frame, whether to emit a keyframe, a delta
// record, or to extend the run length of the last delta record.
//
// Decision per frame i:
//   - i is a multiple of the keyframe interval: keyframe, chain reset
//   - delta from the previous frame does not fit the wire width: keyframe, chain reset
//   - RLE enabled, delta all zero and a delta record exists since the last keyframe:
//     that record's RunLength is incremented and no record is emitted
//   - otherwise: a new delta record
//
// A zero delta right after a keyframe still emits a delta record, since a keyframe
// cannot carry a run length. A static pose of N frames therefore encodes as one
// keyframe plus one zero delta record with RunLength N-2.
//
// Internal state:
//   - prev: last reconstructed quantized frame (equal to the last input frame)
//   - prevTS: timestamp of the immediately preceding input frame
//   - lastDelta: index into deltas of the record a run may extend, -1 for none
//   - count: number of frames written
//
// The encoder is not safe for concurrent use.
type DeltaRLEEncoder struct {
	indices   []landmark.Index
	interval  int
	rle       bool
	count     int
	prev      []quant.Landmark
	cur       []quant.Landmark
	prevTS    float64
	lastDelta int
	keyframes []section.Keyframe
	deltas    []section.DeltaFrame
}

// NewDeltaRLEEncoder creates an encoder for frames restricted to indices.
//
// Parameters:
//   - indices: Retained landmark indices, in record order
//   - interval: Keyframe interval in frames (must be >= 1)
//   - rle: Whether zero deltas may extend the previous delta record
//
// Returns:
//   - *DeltaRLEEncoder: A new encoder ready for Write
func NewDeltaRLEEncoder(indices []landmark.Index, interval int, rle bool) *DeltaRLEEncoder {
	return &DeltaRLEEncoder{
		indices:   indices,
		interval:  interval,
		rle:       rle,
		prev:      make([]quant.Landmark, 0, len(indices)),
		cur:       make([]quant.Landmark, 0, len(indices)),
		lastDelta: -1,
	}
}

// Write encodes one frame.
//
// Returns:
//   - error: ErrCountOverflow once the frame count no longer fits a u32
func (e *DeltaRLEEncoder) Write(f *pose.Frame) error {
	if uint64(e.count) >= math.MaxUint32 {
		return fmt.Errorf("%w: more than %d frames", errs.ErrCountOverflow, uint32(math.MaxUint32))
	}

	e.cur = quant.QuantizeFrame(e.cur, f, e.indices)

	i := e.count
	e.count++

	if i%e.interval == 0 {
		e.writeKeyframe(i, f.Timestamp)
		return nil
	}

	deltas, ok := e.diff()
	if !ok {
		e.writeKeyframe(i, f.Timestamp)
		return nil
	}

	tsDelta := millis(f.Timestamp - e.prevTS)
	e.prevTS = f.Timestamp

	if e.rle && e.lastDelta >= 0 && allZero(deltas) {
		last := &e.deltas[e.lastDelta]
		if last.RunLength < MaxRunLength {
			last.RunLength++
			return nil
		}
	}

	e.deltas = append(e.deltas, section.DeltaFrame{
		FrameIndex:     uint32(i), //nolint: gosec
		TimestampDelta: tsDelta,
		Deltas:         deltas,
	})
	e.lastDelta = len(e.deltas) - 1
	e.prev, e.cur = e.cur, e.prev

	return nil
}

// WriteSlice encodes frames in order.
func (e *DeltaRLEEncoder) WriteSlice(frames []pose.Frame) error {
	for i := range frames {
		if err := e.Write(&frames[i]); err != nil {
			return err
		}
	}

	return nil
}

// Keyframes returns the keyframe records emitted so far, in frame order.
//
// The returned slice is owned by the encoder until Reset.
func (e *DeltaRLEEncoder) Keyframes() []section.Keyframe {
	return e.keyframes
}

// DeltaFrames returns the delta records emitted so far, in frame order.
//
// The returned slice is owned by the encoder until Reset.
func (e *DeltaRLEEncoder) DeltaFrames() []section.DeltaFrame {
	return e.deltas
}

// Len returns the number of frames written.
func (e *DeltaRLEEncoder) Len() int {
	return e.count
}

// Reset clears all state so the encoder can start a new sequence with the same
// indices and settings. Previously returned record slices are released, not reused.
func (e *DeltaRLEEncoder) Reset() {
	e.count = 0
	e.prev = e.prev[:0]
	e.cur = e.cur[:0]
	e.prevTS = 0
	e.lastDelta = -1
	e.keyframes = nil
	e.deltas = nil
}

func (e *DeltaRLEEncoder) writeKeyframe(i int, ts float64) {
	e.keyframes = append(e.keyframes, section.Keyframe{
		FrameIndex: uint32(i), //nolint: gosec
		Timestamp:  float32(ts),
		Landmarks:  slices.Clone(e.cur),
	})
	e.prevTS = ts
	e.lastDelta = -1
	e.prev, e.cur = e.cur, e.prev
}

// diff returns cur - prev per landmark; ok is false when any component overflows.
func (e *DeltaRLEEncoder) diff() ([]quant.Delta, bool) {
	out := make([]quant.Delta, len(e.cur))
	for j := range e.cur {
		d, ok := quant.Diff(e.cur[j], e.prev[j])
		if !ok {
			return nil, false
		}
		out[j] = d
	}

	return out, true
}

func allZero(deltas []quant.Delta) bool {
	for _, d := range deltas {
		if !d.IsZero() {
			return false
		}
	}

	return true
}

// millis converts seconds to whole milliseconds, rounding half away from zero and
// clamping to the u16 wire range.
func millis(seconds float64) uint16 {
	ms := math.Round(seconds * 1000)
	if math.IsNaN(ms) || ms < 0 {
		return 0
	}
	if ms > math.MaxUint16 {
		return math.MaxUint16
	}

	return uint16(ms)
}
