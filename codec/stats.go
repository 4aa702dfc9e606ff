package codec

import (
	"fmt"
	"math"

	"github.com/Stormrider66/toon/format"
)

// Stats is a human-oriented summary of compressed data.
type Stats struct {
	FrameCount       int                 `json:"frameCount"`
	KeyframeCount    int                 `json:"keyframeCount"`
	DeltaFrameCount  int                 `json:"deltaFrameCount"`
	RLEFrames        int                 `json:"rleFrames"`
	LandmarkCount    int                 `json:"landmarkCount"`
	Mode             format.EncodingMode `json:"mode"`
	Duration         float64             `json:"durationSeconds"`
	OriginalKB       float64             `json:"originalKB"`
	CompressedKB     float64             `json:"compressedKB"`
	CompressionRatio float64             `json:"compressionRatio"`
	SpaceSavings     float64             `json:"spaceSavingsPercent"`
	EncodedBytes     int                 `json:"encodedBytes"`
}

// GetStats summarizes d. KB values and the ratio are rounded to two decimals,
// the space savings percentage to one.
func GetStats(d *Data) Stats {
	h := &d.Header

	savings := 0.0
	if h.OriginalSize > 0 {
		savings = (1 - float64(h.CompressedSize)/float64(h.OriginalSize)) * 100
	}

	return Stats{
		FrameCount:       int(h.FrameCount),
		KeyframeCount:    len(d.Keyframes),
		DeltaFrameCount:  len(d.DeltaFrames),
		RLEFrames:        d.RLEFrames(),
		LandmarkCount:    d.LandmarkCount(),
		Mode:             h.Mode,
		Duration:         round(float64(h.Duration), 2),
		OriginalKB:       round(float64(h.OriginalSize)/1024, 2),
		CompressedKB:     round(float64(h.CompressedSize)/1024, 2),
		CompressionRatio: round(h.CompressionRatio, 2),
		SpaceSavings:     round(savings, 1),
		EncodedBytes:     d.Size(),
	}
}

// String renders a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d frames in %.2fs, %d landmarks, mode %s: %d keyframes, %d delta records, %d RLE frames; %.2f KB -> %.2f KB (%.2fx, %.1f%% saved, %d bytes encoded)",
		s.FrameCount, s.Duration, s.LandmarkCount, s.Mode,
		s.KeyframeCount, s.DeltaFrameCount, s.RLEFrames,
		s.OriginalKB, s.CompressedKB, s.CompressionRatio, s.SpaceSavings, s.EncodedBytes)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
