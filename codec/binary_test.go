package codec

import (
	"strings"
	"testing"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/format"
	"github.com/Stormrider66/toon/section"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	t.Run("Exact binary round trip", func(t *testing.T) {
		cases := map[string][]EncoderOption{
			"Defaults":      nil,
			"All landmarks": {WithImportantLandmarksOnly(false)},
			"No RLE":        {WithRLE(false), WithKeyframeInterval(7)},
		}

		for name, opts := range cases {
			t.Run(name, func(t *testing.T) {
				d, err := Compress(walkSequence(150, 17), opts...)
				require.NoError(t, err)

				buf, err := Marshal(d)
				require.NoError(t, err)
				require.Len(t, buf, d.Size())

				parsed, err := Unmarshal(buf)
				require.NoError(t, err)
				require.Equal(t, d, parsed)

				again, err := Marshal(parsed)
				require.NoError(t, err)
				require.Equal(t, buf, again)
			})
		}
	})

	t.Run("Ninety static frames layout", func(t *testing.T) {
		d, err := Compress(staticSequence(90, 30))
		require.NoError(t, err)

		buf, err := Marshal(d)
		require.NoError(t, err)
		require.Len(t, buf, 128+6*(8+16*8))

		require.Equal(t, byte(section.Version), buf[0])
		require.Equal(t, byte(format.ModeHybrid), buf[1])

		// first delta record follows the three keyframes
		off := 128 + 3*136
		require.Equal(t, []byte{1, 0, 0, 0, 33, 0, 28, 0}, buf[off:off+8])
	})

	t.Run("Single frame", func(t *testing.T) {
		d, err := Compress(staticSequence(1, 30))
		require.NoError(t, err)

		buf, err := Marshal(d)
		require.NoError(t, err)
		require.Len(t, buf, 128+136)

		parsed, err := Unmarshal(buf)
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	})

	t.Run("Count mismatch", func(t *testing.T) {
		d, err := Compress(staticSequence(10, 30))
		require.NoError(t, err)

		bad := cloneData(d)
		bad.Header.DeltaFrameCount++
		_, err = Marshal(bad)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)

		bad = cloneData(d)
		bad.Keyframes[0].Landmarks = bad.Keyframes[0].Landmarks[:1]
		_, err = Marshal(bad)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)

		bad = cloneData(d)
		bad.DeltaFrames[0].Deltas = nil
		_, err = Marshal(bad)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})

	t.Run("Invalid header", func(t *testing.T) {
		d, err := Compress(staticSequence(3, 30))
		require.NoError(t, err)

		bad := cloneData(d)
		bad.Header.Version = 2
		_, err = Marshal(bad)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)

		bad = cloneData(d)
		bad.Header.Mode = 9
		_, err = Marshal(bad)
		require.ErrorIs(t, err, errs.ErrInvalidEncodingMode)

		_, err = Marshal(nil)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})
}

func TestAppendBinary(t *testing.T) {
	d, err := Compress(walkSequence(30, 3))
	require.NoError(t, err)

	want, err := Marshal(d)
	require.NoError(t, err)

	prefix := []byte{0xCA, 0xFE}
	got, err := AppendBinary(prefix, d)
	require.NoError(t, err)
	require.Equal(t, prefix, got[:2])
	require.Equal(t, want, got[2:])

	bad := cloneData(d)
	bad.Header.KeyframeCount++
	unchanged, err := AppendBinary(prefix, bad)
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
	require.Equal(t, prefix, unchanged)
}

func TestUnmarshal(t *testing.T) {
	d, err := Compress(walkSequence(40, 2), WithKeyframeInterval(10))
	require.NoError(t, err)

	buf, err := Marshal(d)
	require.NoError(t, err)

	t.Run("Trailing bytes ignored", func(t *testing.T) {
		parsed, err := Unmarshal(append(append([]byte{}, buf...), 0xDE, 0xAD))
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	})

	t.Run("Truncated records", func(t *testing.T) {
		for _, n := range []int{len(buf) - 1, section.HeaderSize + 1, section.HeaderSize} {
			_, err := Unmarshal(buf[:n])
			require.ErrorIs(t, err, errs.ErrTruncatedBuffer, "len %d", n)
		}
	})

	t.Run("Truncated header", func(t *testing.T) {
		_, err := Unmarshal(buf[:section.HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)

		_, err = Unmarshal(nil)
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("Unsupported version", func(t *testing.T) {
		bad := append([]byte{}, buf...)
		bad[0] = 3

		_, err := Unmarshal(bad)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("Invalid header", func(t *testing.T) {
		bad := append([]byte{}, buf...)
		bad[2] = 40

		_, err := Unmarshal(bad)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})

	t.Run("Derived fields recomputed", func(t *testing.T) {
		parsed, err := Unmarshal(buf)
		require.NoError(t, err)
		require.Equal(t, uint8(16), parsed.Header.QuantizationBits)
		require.InDelta(t, float64(parsed.Header.OriginalSize)/float64(parsed.Header.CompressedSize), parsed.Header.CompressionRatio, 1e-12)
	})

	t.Run("IsTOON", func(t *testing.T) {
		require.True(t, IsTOON(buf))
		require.False(t, IsTOON(buf[:10]))
		require.False(t, IsTOON([]byte(strings.Repeat("x", 200))))
	})
}

func TestBase64(t *testing.T) {
	t.Run("Exact round trip", func(t *testing.T) {
		d, err := Compress(walkSequence(64, 4))
		require.NoError(t, err)

		s, err := ToBase64(d)
		require.NoError(t, err)
		require.Zero(t, len(s)%4)

		parsed, err := FromBase64(s)
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	})

	t.Run("Invalid text", func(t *testing.T) {
		_, err := FromBase64("not*base64!")
		require.ErrorIs(t, err, errs.ErrInvalidBase64)
	})

	t.Run("Valid text, invalid buffer", func(t *testing.T) {
		_, err := FromBase64("AAAA")
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("Invalid data", func(t *testing.T) {
		_, err := ToBase64(&Data{})
		require.Error(t, err)
	})
}

func BenchmarkMarshal(b *testing.B) {
	d, err := Compress(walkSequence(900, 7))
	require.NoError(b, err)

	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		_, _ = Marshal(d)
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	d, err := Compress(walkSequence(900, 7))
	require.NoError(b, err)
	buf, err := Marshal(d)
	require.NoError(b, err)

	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		_, _ = Unmarshal(buf)
	}
}
