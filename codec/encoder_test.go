package codec

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/format"
	"github.com/Stormrider66/toon/landmark"
	"github.com/Stormrider66/toon/pose"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func staticSequence(n int, fps float64) []pose.Frame {
	frames := make([]pose.Frame, n)
	for i := range frames {
		frames[i] = pose.StaticFrame(float64(i)/fps, pose.NewLandmark(0.5, 0.5, 0))
	}

	return frames
}

// walkSequence returns a deterministic random walk with occasional holds.
func walkSequence(n int, seed uint64) []pose.Frame {
	rng := rand.New(rand.NewSource(int64(seed ^ 0x9E3779B97F4A7C15)))

	cur := pose.Frame{}
	for i := range cur.Landmarks {
		cur.Landmarks[i] = pose.Landmark{
			X:          rng.Float64(),
			Y:          rng.Float64(),
			Z:          rng.Float64()*2 - 1,
			Visibility: rng.Float64(),
		}
	}

	step := func(v, lo, hi float64) float64 {
		v += (rng.Float64() - 0.5) * 0.02
		return min(max(v, lo), hi)
	}

	frames := make([]pose.Frame, n)
	for i := range frames {
		cur.Timestamp = float64(i) * 0.04
		if i > 0 && rng.Intn(4) != 0 {
			for j := range cur.Landmarks {
				l := &cur.Landmarks[j]
				l.X = step(l.X, 0, 1)
				l.Y = step(l.Y, 0, 1)
				l.Z = step(l.Z, -1, 1)
				l.Visibility = step(l.Visibility, 0, 1)
			}
		}
		frames[i] = cur
	}

	return frames
}

func TestCompress(t *testing.T) {
	t.Run("Ninety static frames", func(t *testing.T) {
		d, err := Compress(staticSequence(90, 30),
			WithImportantLandmarksOnly(true), WithKeyframeInterval(30), WithRLE(true))
		require.NoError(t, err)

		require.Len(t, d.Keyframes, 3)
		for i, want := range []uint32{0, 30, 60} {
			require.Equal(t, want, d.Keyframes[i].FrameIndex)
		}

		require.Len(t, d.DeltaFrames, 3)
		for i, want := range []uint32{1, 31, 61} {
			require.Equal(t, want, d.DeltaFrames[i].FrameIndex)
			require.Equal(t, uint16(28), d.DeltaFrames[i].RunLength)
		}

		h := d.Header
		require.Equal(t, 6, len(d.Keyframes)+len(d.DeltaFrames))
		require.Equal(t, uint32(90), h.FrameCount)
		require.Equal(t, format.ModeHybrid, h.Mode)
		require.Equal(t, uint8(16), h.QuantizationBits)
		require.Equal(t, uint16(landmark.ImportantCount), h.LandmarkCount)
		require.Equal(t, landmark.Select(true), h.LandmarkIndices)
		require.Equal(t, uint32(90*16*32), h.OriginalSize)
		require.Equal(t, uint32(42+6*120), h.CompressedSize)
		require.Greater(t, h.CompressionRatio, 50.0)
		require.InDelta(t, 89.0/30, float64(h.Duration), 1e-6)
	})

	t.Run("Single frame", func(t *testing.T) {
		d, err := Compress(staticSequence(1, 30))
		require.NoError(t, err)

		require.Equal(t, uint32(1), d.Header.FrameCount)
		require.Len(t, d.Keyframes, 1)
		require.Empty(t, d.DeltaFrames)
		require.NotNil(t, d.DeltaFrames)
		require.Zero(t, d.Header.Duration)
	})

	t.Run("Static pose efficiency", func(t *testing.T) {
		for _, n := range []int{2, 5, 29, 30} {
			d, err := Compress(staticSequence(n, 30))
			require.NoError(t, err)

			require.Len(t, d.Keyframes, 1, "n=%d", n)
			require.Len(t, d.DeltaFrames, 1, "n=%d", n)
			require.Equal(t, n-2, int(d.DeltaFrames[0].RunLength), "n=%d", n)
		}
	})

	t.Run("RLE disabled uses delta mode", func(t *testing.T) {
		d, err := Compress(staticSequence(10, 30), WithRLE(false))
		require.NoError(t, err)

		require.Equal(t, format.ModeDelta, d.Header.Mode)
		require.Len(t, d.DeltaFrames, 9)
		require.Zero(t, d.RLEFrames())
	})

	t.Run("All landmarks", func(t *testing.T) {
		d, err := Compress(staticSequence(3, 30), WithImportantLandmarksOnly(false))
		require.NoError(t, err)

		require.Equal(t, landmark.Count, d.LandmarkCount())
		require.Len(t, d.Keyframes[0].Landmarks, landmark.Count)
		require.Equal(t, uint32(3*33*32), d.Header.OriginalSize)
	})

	t.Run("Keyframe placement", func(t *testing.T) {
		frames := walkSequence(100, 3)
		for _, k := range []int{1, 4, 10, 30, 200} {
			d, err := Compress(frames, WithKeyframeInterval(k))
			require.NoError(t, err)

			isKey := make(map[uint32]bool, len(d.Keyframes))
			for _, kf := range d.Keyframes {
				isKey[kf.FrameIndex] = true
			}
			for i := 0; i < len(frames); i += k {
				require.True(t, isKey[uint32(i)], "k=%d frame %d", k, i) //nolint: gosec
			}
			for _, df := range d.DeltaFrames {
				require.False(t, isKey[df.FrameIndex])
				require.NotZero(t, int(df.FrameIndex)%k)
			}
			require.Equal(t, uint16(k), d.Header.KeyframeInterval) //nolint: gosec
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		_, err := Compress(nil)
		require.ErrorIs(t, err, errs.ErrEmptyInput)

		_, err = Compress([]pose.Frame{})
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("Invalid keyframe interval", func(t *testing.T) {
		for _, k := range []int{0, -1, 65536} {
			_, err := Compress(staticSequence(2, 30), WithKeyframeInterval(k))
			require.ErrorIs(t, err, errs.ErrInvalidKeyframeInterval, "k=%d", k)
		}
	})
}

func TestEncoder_Reuse(t *testing.T) {
	enc, err := NewEncoder(WithKeyframeInterval(10))
	require.NoError(t, err)
	require.Equal(t, 10, enc.Config().KeyframeInterval())
	require.True(t, enc.Config().RLE())
	require.True(t, enc.Config().ImportantLandmarksOnly())

	frames := walkSequence(25, 1)
	require.NoError(t, enc.WriteSlice(frames))
	require.Equal(t, 25, enc.Len())

	first, err := enc.Finish()
	require.NoError(t, err)
	require.Zero(t, enc.Len())

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	for i := range frames {
		require.NoError(t, enc.Write(&frames[i]))
	}
	second, err := enc.Finish()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestOptions_EncoderOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		enc, err := NewEncoder(DefaultOptions().EncoderOptions()...)
		require.NoError(t, err)

		cfg := enc.Config()
		require.True(t, cfg.ImportantLandmarksOnly())
		require.Equal(t, DefaultKeyframeInterval, cfg.KeyframeInterval())
		require.True(t, cfg.RLE())
	})

	t.Run("Zero interval keeps default", func(t *testing.T) {
		opts := Options{ImportantLandmarksOnly: false, EnableRLE: false}
		enc, err := NewEncoder(opts.EncoderOptions()...)
		require.NoError(t, err)

		cfg := enc.Config()
		require.False(t, cfg.ImportantLandmarksOnly())
		require.Equal(t, DefaultKeyframeInterval, cfg.KeyframeInterval())
		require.False(t, cfg.RLE())
	})

	t.Run("Invalid interval", func(t *testing.T) {
		opts := Options{KeyframeInterval: 70000}
		_, err := NewEncoder(opts.EncoderOptions()...)
		require.ErrorIs(t, err, errs.ErrInvalidKeyframeInterval)
	})
}

func TestOptions_Unmarshal(t *testing.T) {
	decoders := map[string]func(doc string, o *Options) error{
		"JSON": func(doc string, o *Options) error { return json.Unmarshal([]byte(doc), o) },
		"YAML": func(doc string, o *Options) error { return yaml.Unmarshal([]byte(doc), o) },
	}
	docs := map[string][3]string{
		"JSON": {`{}`, `{"keyframeInterval": 12}`, `{"importantLandmarksOnly": false, "enableRLE": false}`},
		"YAML": {"{}", "keyframeInterval: 12\n", "importantLandmarksOnly: false\nenableRLE: false\n"},
	}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			var o Options
			require.NoError(t, decode(docs[name][0], &o))
			require.Equal(t, DefaultOptions(), o)

			o = Options{}
			require.NoError(t, decode(docs[name][1], &o))
			require.Equal(t, Options{ImportantLandmarksOnly: true, KeyframeInterval: 12, EnableRLE: true}, o)

			o = Options{}
			require.NoError(t, decode(docs[name][2], &o))
			require.Equal(t, Options{KeyframeInterval: DefaultKeyframeInterval}, o)
		})
	}

	t.Run("Omitted keys compress with defaults", func(t *testing.T) {
		var o Options
		require.NoError(t, json.Unmarshal([]byte(`{"keyframeInterval": 30}`), &o))

		d, err := Compress(staticSequence(10, 30), o.EncoderOptions()...)
		require.NoError(t, err)
		require.Len(t, d.Header.LandmarkIndices, landmark.ImportantCount)
		require.Equal(t, format.ModeHybrid, d.Header.Mode)
	})

	t.Run("Malformed", func(t *testing.T) {
		var o Options
		require.Error(t, json.Unmarshal([]byte(`{"enableRLE": "yes"}`), &o))
	})
}

func BenchmarkCompress(b *testing.B) {
	frames := walkSequence(900, 7)

	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		_, _ = Compress(frames)
	}
}
