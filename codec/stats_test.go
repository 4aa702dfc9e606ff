package codec

import (
	"testing"

	"github.com/Stormrider66/toon/format"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	t.Run("Ninety static frames", func(t *testing.T) {
		d, err := Compress(staticSequence(90, 30))
		require.NoError(t, err)

		s := GetStats(d)
		require.Equal(t, Stats{
			FrameCount:       90,
			KeyframeCount:    3,
			DeltaFrameCount:  3,
			RLEFrames:        84,
			LandmarkCount:    16,
			Mode:             format.ModeHybrid,
			Duration:         2.97,
			OriginalKB:       45,
			CompressedKB:     0.74,
			CompressionRatio: 60.47,
			SpaceSavings:     98.3,
			EncodedBytes:     944,
		}, s)

		require.Contains(t, s.String(), "90 frames")
		require.Contains(t, s.String(), "mode hybrid")
		require.Contains(t, s.String(), "60.47x")
	})

	t.Run("Does not modify data", func(t *testing.T) {
		d, err := Compress(walkSequence(20, 1))
		require.NoError(t, err)

		before := cloneData(d)
		_ = GetStats(d)
		require.Equal(t, before, d)
	})

	t.Run("Zero sizes", func(t *testing.T) {
		s := GetStats(&Data{})
		require.Zero(t, s.SpaceSavings)
		require.Zero(t, s.CompressionRatio)
	})
}
