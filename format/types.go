package format

import (
	"fmt"
	"strings"

	"github.com/Stormrider66/toon/errs"
)

type (
	EncodingMode    uint8
	CompressionType uint8
)

const (
	ModeDelta  EncodingMode = 0x0 // ModeDelta stores every non-keyframe as its own delta record.
	ModeRLE    EncodingMode = 0x1 // ModeRLE is accepted on read; the encoder never produces it.
	ModeHybrid EncodingMode = 0x2 // ModeHybrid folds zero deltas into run-length extensions.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m EncodingMode) String() string {
	switch m {
	case ModeDelta:
		return "delta"
	case ModeRLE:
		return "rle"
	case ModeHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined compression codes.
func (m EncodingMode) Valid() bool {
	return m <= ModeHybrid
}

// ParseEncodingMode parses the textual mode name used by the JSON form.
func ParseEncodingMode(s string) (EncodingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delta":
		return ModeDelta, nil
	case "rle":
		return ModeRLE, nil
	case "hybrid":
		return ModeHybrid, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidEncodingMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m EncodingMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: code %d", errs.ErrInvalidEncodingMode, uint8(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *EncodingMode) UnmarshalText(text []byte) error {
	mode, err := ParseEncodingMode(string(text))
	if err != nil {
		return err
	}
	*m = mode

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name (none, zstd, s2, lz4).
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompressionType, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c CompressionType) MarshalText() ([]byte, error) {
	if c < CompressionNone || c > CompressionLZ4 {
		return nil, fmt.Errorf("%w: code %d", errs.ErrInvalidCompressionType, uint8(c))
	}

	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CompressionType) UnmarshalText(text []byte) error {
	ct, err := ParseCompressionType(string(text))
	if err != nil {
		return err
	}
	*c = ct

	return nil
}
