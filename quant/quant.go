// Package quant maps normalized pose landmarks to fixed-width integers and back,
// and computes the per-landmark deltas carried by delta records.
//
// # Rounding
//
// Quantization multiplies by a per-component scale and rounds half away from zero
// (math.Round), which is the sole source of lossy error. The reconstruction error
// of an in-range component is at most half a quantization step:
//
//	x, y:       step 1/65535
//	z:          step 1/32767
//	visibility: step 1/255
//
// Inputs are expected to be pre-normalized, but every result is clamped to the
// legal integer range so out-of-range producers (visibility > 1, z < -1) cannot
// wrap. NaN quantizes to 0.
package quant

import (
	"math"

	"github.com/Stormrider66/toon/landmark"
	"github.com/Stormrider66/toon/pose"
)

// Quantization scales.
const (
	UnitScale       = 65535 // x and y
	DepthScale      = 32767 // z
	VisibilityScale = 255   // visibility

	// Bits is the quantization bit-width recorded in headers.
	Bits = 16
)

// Landmark is the fixed-width encoding of one pose.Landmark.
type Landmark struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
	Z int16  `json:"z"`
	V uint8  `json:"v"`
}

// Delta is the signed per-component difference between two quantized landmarks
// at the same logical point in consecutive frames.
type Delta struct {
	DX int16 `json:"dx"`
	DY int16 `json:"dy"`
	DZ int16 `json:"dz"`
	DV int8  `json:"dv"`
}

// IsZero reports whether every component of d is zero.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Quantize encodes a landmark into its fixed-width form.
func Quantize(l pose.Landmark) Landmark {
	return Landmark{
		X: uint16(scale(l.X, UnitScale, 0, math.MaxUint16)),              //nolint: gosec
		Y: uint16(scale(l.Y, UnitScale, 0, math.MaxUint16)),              //nolint: gosec
		Z: int16(scale(l.Z, DepthScale, math.MinInt16, math.MaxInt16)),   //nolint: gosec
		V: uint8(scale(l.Visibility, VisibilityScale, 0, math.MaxUint8)), //nolint: gosec
	}
}

// Dequantize decodes a quantized landmark back to normalized floats.
func Dequantize(q Landmark) pose.Landmark {
	return pose.Landmark{
		X:          float64(q.X) / UnitScale,
		Y:          float64(q.Y) / UnitScale,
		Z:          float64(q.Z) / DepthScale,
		Visibility: float64(q.V) / VisibilityScale,
	}
}

// QuantizeFrame quantizes the retained landmarks of f, in the order given by
// indices, appending them to dst[:0].
func QuantizeFrame(dst []Landmark, f *pose.Frame, indices []landmark.Index) []Landmark {
	dst = dst[:0]
	for _, idx := range indices {
		dst = append(dst, Quantize(f.Landmarks[idx]))
	}

	return dst
}

// Diff returns cur - prev component-wise.
//
// The subtraction is exact; ok is false when any component does not fit the
// delta's wire width (int16 for x/y/z, int8 for visibility).
func Diff(cur, prev Landmark) (d Delta, ok bool) {
	dx := int32(cur.X) - int32(prev.X)
	dy := int32(cur.Y) - int32(prev.Y)
	dz := int32(cur.Z) - int32(prev.Z)
	dv := int32(cur.V) - int32(prev.V)

	if !fits16(dx) || !fits16(dy) || !fits16(dz) || dv < math.MinInt8 || dv > math.MaxInt8 {
		return Delta{}, false
	}

	return Delta{DX: int16(dx), DY: int16(dy), DZ: int16(dz), DV: int8(dv)}, true
}

// Apply adds d to prev, clamping every component to its legal range.
func Apply(prev Landmark, d Delta) Landmark {
	return Landmark{
		X: uint16(clamp(int32(prev.X)+int32(d.DX), 0, math.MaxUint16)),           //nolint: gosec
		Y: uint16(clamp(int32(prev.Y)+int32(d.DY), 0, math.MaxUint16)),           //nolint: gosec
		Z: int16(clamp(int32(prev.Z)+int32(d.DZ), math.MinInt16, math.MaxInt16)), //nolint: gosec
		V: uint8(clamp(int32(prev.V)+int32(d.DV), 0, math.MaxUint8)),             //nolint: gosec
	}
}

func scale(v, s, lo, hi float64) int32 {
	if math.IsNaN(v) {
		v = 0
	}

	r := math.Round(v * s)
	if r < lo {
		r = lo
	} else if r > hi {
		r = hi
	}

	return int32(r)
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func fits16(v int32) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}
