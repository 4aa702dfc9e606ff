package format

import (
	"testing"

	"github.com/Stormrider66/toon/errs"
	"github.com/stretchr/testify/require"
)

func TestEncodingMode_String(t *testing.T) {
	require.Equal(t, "delta", ModeDelta.String())
	require.Equal(t, "rle", ModeRLE.String())
	require.Equal(t, "hybrid", ModeHybrid.String())
	require.Equal(t, "unknown", EncodingMode(7).String())
}

func TestEncodingMode_Text(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		for _, m := range []EncodingMode{ModeDelta, ModeRLE, ModeHybrid} {
			text, err := m.MarshalText()
			require.NoError(t, err)

			var parsed EncodingMode
			require.NoError(t, parsed.UnmarshalText(text))
			require.Equal(t, m, parsed)
		}
	})

	t.Run("Case insensitive", func(t *testing.T) {
		m, err := ParseEncodingMode(" Hybrid ")
		require.NoError(t, err)
		require.Equal(t, ModeHybrid, m)
	})

	t.Run("Unknown name", func(t *testing.T) {
		var m EncodingMode
		err := m.UnmarshalText([]byte("gorilla"))
		require.ErrorIs(t, err, errs.ErrInvalidEncodingMode)
	})

	t.Run("Unknown code", func(t *testing.T) {
		_, err := EncodingMode(3).MarshalText()
		require.ErrorIs(t, err, errs.ErrInvalidEncodingMode)
		require.False(t, EncodingMode(3).Valid())
	})
}

func TestCompressionType_Parse(t *testing.T) {
	cases := map[string]CompressionType{
		"none": CompressionNone,
		"":     CompressionNone,
		"ZSTD": CompressionZstd,
		"s2":   CompressionS2,
		"lz4":  CompressionLZ4,
	}

	for in, want := range cases {
		got, err := ParseCompressionType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseCompressionType("brotli")
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestCompressionType_Text(t *testing.T) {
	text, err := CompressionLZ4.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "lz4", string(text))

	var c CompressionType
	require.NoError(t, c.UnmarshalText([]byte("s2")))
	require.Equal(t, CompressionS2, c)

	_, err = CompressionType(0).MarshalText()
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
	require.Equal(t, "Unknown", CompressionType(9).String())
}
