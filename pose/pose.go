// Package pose defines the uncompressed, producer-facing pose types.
package pose

import (
	"encoding/json"
	"fmt"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/landmark"
)

// Landmark is one skeletal point.
//
// X and Y are normalized image coordinates in [0,1], Z is depth roughly in [-1,1]
// and Visibility is a confidence in [0,1].
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// NewLandmark returns a landmark with full visibility.
func NewLandmark(x, y, z float64) Landmark {
	return Landmark{X: x, Y: y, Z: z, Visibility: 1}
}

// UnmarshalJSON decodes a landmark, defaulting Visibility to 1 when the field is absent.
func (l *Landmark) UnmarshalJSON(b []byte) error {
	var raw struct {
		X          float64  `json:"x"`
		Y          float64  `json:"y"`
		Z          float64  `json:"z"`
		Visibility *float64 `json:"visibility"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*l = Landmark{X: raw.X, Y: raw.Y, Z: raw.Z, Visibility: 1}
	if raw.Visibility != nil {
		l.Visibility = *raw.Visibility
	}

	return nil
}

// Frame is one sampled instant of a pose sequence.
//
// Landmarks is indexed by landmark.Index. Timestamp is in seconds and should be
// non-decreasing across a sequence.
type Frame struct {
	Timestamp float64                  `json:"timestamp"`
	Landmarks [landmark.Count]Landmark `json:"landmarks"`
}

// UnmarshalJSON decodes a frame and rejects landmark arrays that do not hold
// exactly landmark.Count entries.
func (f *Frame) UnmarshalJSON(b []byte) error {
	var raw struct {
		Timestamp float64    `json:"timestamp"`
		Landmarks []Landmark `json:"landmarks"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if len(raw.Landmarks) != landmark.Count {
		return fmt.Errorf("%w: got %d landmarks, want %d", errs.ErrInvalidFrame, len(raw.Landmarks), landmark.Count)
	}

	f.Timestamp = raw.Timestamp
	copy(f.Landmarks[:], raw.Landmarks)

	return nil
}

// StaticFrame returns a frame with every landmark set to l.
func StaticFrame(timestamp float64, l Landmark) Frame {
	f := Frame{Timestamp: timestamp}
	for i := range f.Landmarks {
		f.Landmarks[i] = l
	}

	return f
}
