package codec

import (
	"fmt"
	"slices"

	"github.com/Stormrider66/toon/endian"
	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/section"
)

var engine = endian.GetLittleEndianEngine()

// Marshal serializes d into the TOON binary layout.
//
// The exact buffer size is computed from the record counts and allocated once.
//
// Returns:
//   - []byte: Serialized buffer of d.Size() bytes
//   - error: ErrUnsupportedVersion or ErrInvalidHeader if the header is invalid,
//     its record counts disagree with the record slices, or a record has the
//     wrong landmark count
func Marshal(d *Data) ([]byte, error) {
	return AppendBinary(nil, d)
}

// AppendBinary appends the TOON binary layout of d to dst and returns the
// extended slice. dst is grown at most once.
//
// Returns the same errors as Marshal; dst is returned unchanged on error.
func AppendBinary(dst []byte, d *Data) ([]byte, error) {
	if d == nil {
		return dst, fmt.Errorf("%w: nil data", errs.ErrInvalidHeader)
	}

	h := &d.Header.Header
	if err := h.Validate(); err != nil {
		return dst, err
	}

	if int(h.KeyframeCount) != len(d.Keyframes) || int(h.DeltaFrameCount) != len(d.DeltaFrames) {
		return dst, fmt.Errorf("%w: header declares %d keyframes and %d delta records, have %d and %d",
			errs.ErrInvalidHeader, h.KeyframeCount, h.DeltaFrameCount, len(d.Keyframes), len(d.DeltaFrames))
	}

	l := d.LandmarkCount()
	for i := range d.Keyframes {
		if n := len(d.Keyframes[i].Landmarks); n != l {
			return dst, fmt.Errorf("%w: keyframe %d has %d landmarks, want %d", errs.ErrInvalidHeader, i, n, l)
		}
	}
	for i := range d.DeltaFrames {
		if n := len(d.DeltaFrames[i].Deltas); n != l {
			return dst, fmt.Errorf("%w: delta record %d has %d landmarks, want %d", errs.ErrInvalidHeader, i, n, l)
		}
	}

	start := len(dst)
	buf := slices.Grow(dst, d.Size())[:start+d.Size()]
	offset := h.WriteToSlice(buf, start, engine)
	for i := range d.Keyframes {
		offset = d.Keyframes[i].WriteToSlice(buf, offset, engine)
	}
	for i := range d.DeltaFrames {
		offset = d.DeltaFrames[i].WriteToSlice(buf, offset, engine)
	}

	return buf, nil
}

// Unmarshal parses a TOON binary buffer.
//
// The declared record sizes are checked against the buffer length before any
// record is read. Bytes after the last declared record are ignored. The derived
// header fields are recomputed from the parsed values.
//
// Returns:
//   - *Data: Parsed data
//   - error: ErrTruncatedBuffer, ErrUnsupportedVersion or ErrInvalidHeader
func Unmarshal(data []byte) (*Data, error) {
	h, err := section.ParseHeader(data, engine)
	if err != nil {
		return nil, err
	}

	need := section.HeaderSize + h.RecordsSize()
	if len(data) < need {
		return nil, fmt.Errorf("%w: header declares %d bytes, have %d", errs.ErrTruncatedBuffer, need, len(data))
	}

	l := len(h.LandmarkIndices)
	d := &Data{
		Header:      newHeader(h),
		Keyframes:   make([]section.Keyframe, h.KeyframeCount),
		DeltaFrames: make([]section.DeltaFrame, h.DeltaFrameCount),
	}

	offset := section.HeaderSize
	for i := range d.Keyframes {
		if d.Keyframes[i], err = section.ParseKeyframe(data[offset:], l, engine); err != nil {
			return nil, err
		}
		offset += section.KeyframeSize(l)
	}
	for i := range d.DeltaFrames {
		if d.DeltaFrames[i], err = section.ParseDeltaFrame(data[offset:], l, engine); err != nil {
			return nil, err
		}
		offset += section.DeltaFrameSize(l)
	}

	return d, nil
}

// IsTOON reports whether data starts with a TOON header of a supported version.
func IsTOON(data []byte) bool {
	_, err := section.ParseHeader(data, engine)
	return err == nil
}
