package toon

import (
	"encoding/json"
	"testing"

	"github.com/Stormrider66/toon/codec"
	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/format"
	"github.com/Stormrider66/toon/landmark"
	"github.com/Stormrider66/toon/pose"
	"github.com/stretchr/testify/require"
)

func staticFrames(n int) []pose.Frame {
	frames := make([]pose.Frame, n)
	for i := range frames {
		frames[i] = pose.StaticFrame(float64(i)/30, pose.NewLandmark(0.5, 0.5, 0))
	}

	return frames
}

func TestCompress(t *testing.T) {
	t.Run("Ninety static frames", func(t *testing.T) {
		d, err := Compress(staticFrames(90))
		require.NoError(t, err)

		require.Len(t, d.Keyframes, 3)
		require.Len(t, d.DeltaFrames, 3)
		for i, df := range d.DeltaFrames {
			require.Equal(t, uint32(1+30*i), df.FrameIndex)
			require.Equal(t, uint16(28), df.RunLength)
		}
		require.Greater(t, d.Header.CompressionRatio, 50.0)
	})

	t.Run("Single frame", func(t *testing.T) {
		d, err := Compress(staticFrames(1))
		require.NoError(t, err)
		require.Equal(t, uint32(1), d.Header.FrameCount)
		require.Len(t, d.Keyframes, 1)
		require.Empty(t, d.DeltaFrames)

		out, err := Decompress(d)
		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("Empty input", func(t *testing.T) {
		_, err := Compress(nil)
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("Plain options with omitted keys", func(t *testing.T) {
		var o codec.Options
		require.NoError(t, json.Unmarshal([]byte(`{"keyframeInterval": 4}`), &o))

		d, err := CompressWithOptions(staticFrames(10), o)
		require.NoError(t, err)
		require.Equal(t, uint16(4), d.Header.KeyframeInterval)
		require.Equal(t, format.ModeHybrid, d.Header.Mode)
		require.Len(t, d.Header.LandmarkIndices, landmark.ImportantCount)
	})

	t.Run("Plain options overriding defaults", func(t *testing.T) {
		o := codec.DefaultOptions()
		o.ImportantLandmarksOnly = false
		o.EnableRLE = false

		d, err := CompressWithOptions(staticFrames(10), o)
		require.NoError(t, err)
		require.Equal(t, format.ModeDelta, d.Header.Mode)
		require.Len(t, d.Header.LandmarkIndices, landmark.Count)
	})
}

func TestRoundTrip(t *testing.T) {
	d, err := Compress(staticFrames(45))
	require.NoError(t, err)

	t.Run("Binary", func(t *testing.T) {
		buf, err := Serialize(d)
		require.NoError(t, err)

		parsed, err := Deserialize(buf)
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	})

	t.Run("Base64", func(t *testing.T) {
		s, err := ToBase64(d)
		require.NoError(t, err)

		parsed, err := FromBase64(s)
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	})

	t.Run("Sealed", func(t *testing.T) {
		sealed, err := Seal(d, format.CompressionS2)
		require.NoError(t, err)

		parsed, err := Open(sealed)
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	})

	t.Run("Frames", func(t *testing.T) {
		out, err := Decompress(d)
		require.NoError(t, err)
		require.Len(t, out, 45)
		require.InDelta(t, 0.5, out[44].Landmarks[landmark.RightAnkle].X, 1.0/65535)
	})

	t.Run("Stats", func(t *testing.T) {
		s := Stats(d)
		require.Equal(t, 45, s.FrameCount)
		require.Equal(t, 2, s.KeyframeCount)
	})
}
