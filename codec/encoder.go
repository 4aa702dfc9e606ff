package codec

import (
	"fmt"
	"math"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/format"
	"github.com/Stormrider66/toon/internal/encoding"
	"github.com/Stormrider66/toon/internal/options"
	"github.com/Stormrider66/toon/landmark"
	"github.com/Stormrider66/toon/pose"
	"github.com/Stormrider66/toon/section"
)

// originalLandmarkSize is the conceptual uncompressed cost of one landmark:
// four float64 fields.
const originalLandmarkSize = 4 * 8

// Encoder compresses a pose sequence frame by frame.
//
// Frames are written with Write or WriteSlice and Finish produces the Data.
// After Finish the encoder is reset and may be reused for a new sequence with
// the same configuration. An Encoder is not safe for concurrent use.
type Encoder struct {
	config  *EncoderConfig
	indices []landmark.Index
	enc     *encoding.DeltaRLEEncoder
	firstTS float64
	lastTS  float64
}

// NewEncoder creates an encoder with the given options applied over the defaults.
//
// Parameters:
//   - opts: Optional configuration (WithImportantLandmarksOnly, WithKeyframeInterval, WithRLE)
//
// Returns:
//   - *Encoder: A new encoder ready for Write
//   - error: ErrInvalidKeyframeInterval if an option is out of range
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	indices := landmark.Select(config.importantOnly)

	return &Encoder{
		config:  config,
		indices: indices,
		enc:     encoding.NewDeltaRLEEncoder(indices, config.keyframeInterval, config.rle),
	}, nil
}

// Config returns the encoder configuration.
func (e *Encoder) Config() *EncoderConfig {
	return e.config
}

// Write appends one frame to the sequence.
func (e *Encoder) Write(f *pose.Frame) error {
	if err := e.enc.Write(f); err != nil {
		return err
	}

	if e.enc.Len() == 1 {
		e.firstTS = f.Timestamp
	}
	e.lastTS = f.Timestamp

	return nil
}

// WriteSlice appends frames to the sequence in order.
func (e *Encoder) WriteSlice(frames []pose.Frame) error {
	for i := range frames {
		if err := e.Write(&frames[i]); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of frames written since the last Finish.
func (e *Encoder) Len() int {
	return e.enc.Len()
}

// Finish builds the compressed Data for all frames written so far and resets
// the encoder.
//
// Returns:
//   - *Data: Compressed sequence with header, keyframes and delta records
//   - error: ErrEmptyInput if no frame was written, ErrCountOverflow if a count
//     or size does not fit its header field
func (e *Encoder) Finish() (*Data, error) {
	defer e.enc.Reset()

	frameCount := e.enc.Len()
	if frameCount == 0 {
		return nil, errs.ErrEmptyInput
	}

	keyframes := e.enc.Keyframes()
	deltas := e.enc.DeltaFrames()
	if deltas == nil {
		deltas = []section.DeltaFrame{}
	}

	if len(keyframes) > math.MaxUint16 || len(deltas) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d keyframes and %d delta records, limit %d each",
			errs.ErrCountOverflow, len(keyframes), len(deltas), math.MaxUint16)
	}

	l := len(e.indices)
	originalSize := uint64(frameCount) * uint64(l) * originalLandmarkSize
	compressedSize := uint64(section.HeaderCost(l)) + uint64(len(keyframes)+len(deltas))*uint64(section.RecordCost(l)) //nolint: gosec
	if originalSize > math.MaxUint32 || compressedSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: original size %d, compressed size %d", errs.ErrCountOverflow, originalSize, compressedSize)
	}

	mode := format.ModeDelta
	if e.config.rle {
		mode = format.ModeHybrid
	}

	h := section.Header{
		Version:          section.Version,
		Mode:             mode,
		LandmarkCount:    uint16(l), //nolint: gosec
		LandmarkIndices:  landmark.Select(e.config.importantOnly),
		KeyframeInterval: uint16(e.config.keyframeInterval), //nolint: gosec
		FrameCount:       uint32(frameCount),                //nolint: gosec
		Duration:         float32(e.lastTS - e.firstTS),
		OriginalSize:     uint32(originalSize),   //nolint: gosec
		CompressedSize:   uint32(compressedSize), //nolint: gosec
		KeyframeCount:    uint16(len(keyframes)), //nolint: gosec
		DeltaFrameCount:  uint16(len(deltas)),    //nolint: gosec
	}

	return &Data{
		Header:      newHeader(h),
		Keyframes:   keyframes,
		DeltaFrames: deltas,
	}, nil
}

// Compress compresses a complete pose sequence.
//
// Parameters:
//   - frames: Non-empty ordered frame sequence
//   - opts: Optional configuration (WithImportantLandmarksOnly, WithKeyframeInterval, WithRLE)
//
// Returns:
//   - *Data: Compressed sequence
//   - error: ErrEmptyInput, ErrInvalidKeyframeInterval or ErrCountOverflow
func Compress(frames []pose.Frame, opts ...EncoderOption) (*Data, error) {
	if len(frames) == 0 {
		return nil, errs.ErrEmptyInput
	}

	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	if err := enc.WriteSlice(frames); err != nil {
		return nil, err
	}

	return enc.Finish()
}
