// Package endian provides byte order utilities for the TOON binary layout.
//
// This package combines encoding/binary's ByteOrder and AppendByteOrder interfaces
// into a single EndianEngine interface, and adds the signed and float32 accessors
// the TOON records need (i16 coordinates, i8 visibility deltas, f32 timestamps).
//
// # Basic Usage
//
// TOON buffers are little-endian throughout:
//
//	engine := endian.GetLittleEndianEngine()
//	endian.PutInt16(engine, buf[4:6], -12)
//	endian.PutFloat32(engine, buf[10:14], 3.0)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by the TOON layout.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// PutInt16 writes a two's complement int16 into b[0:2].
func PutInt16(engine EndianEngine, b []byte, v int16) {
	engine.PutUint16(b, uint16(v)) //nolint: gosec
}

// Int16 reads a two's complement int16 from b[0:2].
func Int16(engine EndianEngine, b []byte) int16 {
	return int16(engine.Uint16(b)) //nolint: gosec
}

// PutFloat32 writes the IEEE 754 bits of v into b[0:4].
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// Float32 reads an IEEE 754 float32 from b[0:4].
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}
