package codec

import (
	"fmt"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/internal/pool"
	"github.com/Stormrider66/toon/landmark"
	"github.com/Stormrider66/toon/pose"
	"github.com/Stormrider66/toon/quant"
)

type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotKeyframe
	slotDelta
	slotRun
)

// slot records which record reconstructs one frame index.
type slot struct {
	kind slotKind
	rec  int32 // index into Keyframes or DeltaFrames
}

// Decoder reconstructs pose frames from compressed Data.
//
// NewDecoder checks that the records describe every frame exactly once before
// anything is decoded, so Decode never silently repeats stale state.
type Decoder struct {
	data    *Data
	indices []landmark.Index
	slots   []slot
}

// NewDecoder validates the frame sequence of d and prepares it for decoding.
//
// Parameters:
//   - d: Compressed data, not modified
//
// Returns:
//   - *Decoder: Decoder ready for Decode or DecodeRange
//   - error: ErrMalformedSequence if a frame index has no record, is described twice,
//     or lies past FrameCount, or if a record has the wrong landmark count
func NewDecoder(d *Data) (*Decoder, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil data", errs.ErrMalformedSequence)
	}

	slots, err := plan(d)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		data:    d,
		indices: d.Header.LandmarkIndices,
		slots:   slots,
	}, nil
}

// Len returns the number of frames the data describes.
func (dec *Decoder) Len() int {
	return len(dec.slots)
}

// Decode reconstructs every frame of the sequence.
func (dec *Decoder) Decode() []pose.Frame {
	return dec.decode(0, 0, len(dec.slots))
}

// DecodeRange reconstructs frames [start, end).
//
// Decoding starts at the nearest keyframe at or before start, so the cost is
// bounded by the keyframe interval rather than the sequence length.
//
// Returns:
//   - []pose.Frame: end-start frames
//   - error: ErrMalformedSequence if the range is outside 0..Len()
func (dec *Decoder) DecodeRange(start, end int) ([]pose.Frame, error) {
	if start < 0 || end > len(dec.slots) || start > end {
		return nil, fmt.Errorf("%w: range [%d, %d) outside %d frames", errs.ErrMalformedSequence, start, end, len(dec.slots))
	}
	if start == end {
		return []pose.Frame{}, nil
	}

	anchor := start
	for anchor > 0 && dec.slots[anchor].kind != slotKeyframe {
		anchor--
	}

	return dec.decode(anchor, start, end), nil
}

func (dec *Decoder) decode(anchor, start, end int) []pose.Frame {
	frames := make([]pose.Frame, 0, end-start)
	state, cleanup := pool.GetLandmarkSlice(len(dec.indices))
	defer cleanup()

	var ts float64
	for i := anchor; i < end; i++ {
		s := dec.slots[i]
		switch s.kind {
		case slotKeyframe:
			kf := &dec.data.Keyframes[s.rec]
			copy(state, kf.Landmarks)
			ts = float64(kf.Timestamp)
		case slotDelta:
			df := &dec.data.DeltaFrames[s.rec]
			for j := range state {
				state[j] = quant.Apply(state[j], df.Deltas[j])
			}
			ts += float64(df.TimestampDelta) / 1000
		case slotRun:
			ts += float64(dec.data.DeltaFrames[s.rec].TimestampDelta) / 1000
		case slotEmpty:
			// rejected by plan
		}

		if i >= start {
			frames = append(frames, dec.expand(state, ts))
		}
	}

	return frames
}

// expand dequantizes state into a full frame; landmarks that were not retained
// are left as zero placeholders.
func (dec *Decoder) expand(state []quant.Landmark, ts float64) pose.Frame {
	f := pose.Frame{Timestamp: ts}
	for j, idx := range dec.indices {
		f.Landmarks[idx] = quant.Dequantize(state[j])
	}

	return f
}

// plan assigns every frame index to exactly one record.
func plan(d *Data) ([]slot, error) {
	frameCount := int(d.Header.FrameCount)
	l := d.LandmarkCount()

	if l == 0 || l > landmark.Count {
		return nil, fmt.Errorf("%w: %d landmark indices", errs.ErrMalformedSequence, l)
	}
	for _, idx := range d.Header.LandmarkIndices {
		if !idx.Valid() {
			return nil, fmt.Errorf("%w: landmark index %d", errs.ErrMalformedSequence, idx)
		}
	}

	// coverage is checked before the slot table is allocated
	covered := len(d.Keyframes)
	for i := range d.DeltaFrames {
		covered += d.DeltaFrames[i].Covers()
	}
	if frameCount == 0 || covered != frameCount {
		return nil, fmt.Errorf("%w: records cover %d frames, header declares %d", errs.ErrMalformedSequence, covered, frameCount)
	}

	slots := make([]slot, frameCount)

	for k := range d.Keyframes {
		kf := &d.Keyframes[k]
		if len(kf.Landmarks) != l {
			return nil, fmt.Errorf("%w: keyframe %d has %d landmarks, want %d", errs.ErrMalformedSequence, kf.FrameIndex, len(kf.Landmarks), l)
		}
		if err := claim(slots, int(kf.FrameIndex), slot{kind: slotKeyframe, rec: int32(k)}); err != nil { //nolint: gosec
			return nil, err
		}
	}

	for k := range d.DeltaFrames {
		df := &d.DeltaFrames[k]
		if len(df.Deltas) != l {
			return nil, fmt.Errorf("%w: delta record %d has %d landmarks, want %d", errs.ErrMalformedSequence, df.FrameIndex, len(df.Deltas), l)
		}

		first := int(df.FrameIndex)
		if err := claim(slots, first, slot{kind: slotDelta, rec: int32(k)}); err != nil { //nolint: gosec
			return nil, err
		}
		for i := first + 1; i < first+df.Covers(); i++ {
			if err := claim(slots, i, slot{kind: slotRun, rec: int32(k)}); err != nil { //nolint: gosec
				return nil, err
			}
		}
	}

	// every slot is claimed at this point: coverage equals frameCount and no slot
	// was claimed twice
	if slots[0].kind != slotKeyframe {
		return nil, fmt.Errorf("%w: frame 0 is not a keyframe", errs.ErrMalformedSequence)
	}

	return slots, nil
}

func claim(slots []slot, i int, s slot) error {
	if i >= len(slots) {
		return fmt.Errorf("%w: record at frame %d past frame count %d", errs.ErrMalformedSequence, i, len(slots))
	}
	if slots[i].kind != slotEmpty {
		return fmt.Errorf("%w: frame %d described by more than one record", errs.ErrMalformedSequence, i)
	}
	slots[i] = s

	return nil
}

// Decompress reconstructs the full frame sequence from d.
//
// Exactly Header.FrameCount frames are returned, each with 33 landmarks.
//
// Returns:
//   - []pose.Frame: Reconstructed frames
//   - error: ErrMalformedSequence if the records do not describe every frame exactly once
func Decompress(d *Data) ([]pose.Frame, error) {
	dec, err := NewDecoder(d)
	if err != nil {
		return nil, err
	}

	return dec.Decode(), nil
}
