// Package landmark enumerates the 33 skeletal points of a pose estimation output
// and selects which of them a compressed sequence retains.
package landmark

import (
	"strconv"
)

// Count is the number of landmarks in a full pose frame.
const Count = 33

// Index identifies an anatomical landmark (0-32).
type Index uint8

const (
	Nose Index = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex
)

var names = [Count]string{
	"nose",
	"left_eye_inner", "left_eye", "left_eye_outer",
	"right_eye_inner", "right_eye", "right_eye_outer",
	"left_ear", "right_ear",
	"mouth_left", "mouth_right",
	"left_shoulder", "right_shoulder",
	"left_elbow", "right_elbow",
	"left_wrist", "right_wrist",
	"left_pinky", "right_pinky",
	"left_index", "right_index",
	"left_thumb", "right_thumb",
	"left_hip", "right_hip",
	"left_knee", "right_knee",
	"left_ankle", "right_ankle",
	"left_heel", "right_heel",
	"left_foot_index", "right_foot_index",
}

// important is the curated 16-point body subset: shoulders, elbows, wrists,
// hips, knees, ankles, heels and foot indices. Face and hand points are dropped.
var important = [...]Index{
	LeftShoulder, RightShoulder,
	LeftElbow, RightElbow,
	LeftWrist, RightWrist,
	LeftHip, RightHip,
	LeftKnee, RightKnee,
	LeftAnkle, RightAnkle,
	LeftHeel, RightHeel,
	LeftFootIndex, RightFootIndex,
}

// ImportantCount is the number of landmarks in the important subset.
const ImportantCount = len(important)

// Valid reports whether i names one of the 33 landmarks.
func (i Index) Valid() bool {
	return i < Count
}

// String returns the anatomical name of the landmark.
func (i Index) String() string {
	if !i.Valid() {
		return "landmark(" + strconv.Itoa(int(i)) + ")"
	}

	return names[i]
}

// MarshalJSON encodes the index as a JSON number.
//
// Without it, encoding/json would render a []Index as a base64 string.
func (i Index) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(i), 10), nil
}

// UnmarshalJSON decodes the index from a JSON number in 0..255.
func (i *Index) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseUint(string(b), 10, 8)
	if err != nil {
		return err
	}
	*i = Index(v)

	return nil
}

// Select returns the ordered landmark indices to retain.
//
// With importantOnly set it returns the 16-point body subset, otherwise all 33
// indices in natural order. The returned slice is freshly allocated and owned by
// the caller.
func Select(importantOnly bool) []Index {
	if importantOnly {
		out := make([]Index, ImportantCount)
		copy(out, important[:])

		return out
	}

	out := make([]Index, Count)
	for i := range out {
		out[i] = Index(i)
	}

	return out
}
