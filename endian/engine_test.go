package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestInt16(t *testing.T) {
	engine := GetLittleEndianEngine()
	buf := make([]byte, 2)

	for _, v := range []int16{0, 1, -1, math.MaxInt16, math.MinInt16, -12345} {
		PutInt16(engine, buf, v)
		require.Equal(t, v, Int16(engine, buf))
	}

	// -2 in little-endian two's complement
	PutInt16(engine, buf, -2)
	require.Equal(t, []byte{0xFE, 0xFF}, buf)
}

func TestFloat32(t *testing.T) {
	engine := GetLittleEndianEngine()
	buf := make([]byte, 4)

	for _, v := range []float32{0, 1.5, -3.25, math.MaxFloat32, math.SmallestNonzeroFloat32} {
		PutFloat32(engine, buf, v)
		require.Equal(t, v, Float32(engine, buf))
	}

	PutFloat32(engine, buf, 1.0)
	require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, buf)
}

func TestFloat32_BigEndian(t *testing.T) {
	engine := GetBigEndianEngine()
	buf := make([]byte, 4)

	PutFloat32(engine, buf, 1.0)
	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, buf)
	require.Equal(t, float32(1.0), Float32(engine, buf))
}
