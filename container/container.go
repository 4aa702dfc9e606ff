package container

import (
	"fmt"
	"math"
	"slices"

	"github.com/Stormrider66/toon/codec"
	"github.com/Stormrider66/toon/compress"
	"github.com/Stormrider66/toon/endian"
	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/format"
	"github.com/Stormrider66/toon/internal/hash"
	"github.com/Stormrider66/toon/internal/pool"
)

const (
	Magic      uint16 = 0x7E0A // Magic identifies a sealed container.
	Version    uint8  = 1      // Version is the only container version understood.
	HeaderSize        = 16     // HeaderSize is the fixed container header length.
)

const (
	offMagic       = 0
	offVersion     = 2
	offCompression = 3
	offRawLength   = 4
	offChecksum    = 8
)

var engine = endian.GetLittleEndianEngine()

// Info describes a sealed container without opening its payload.
type Info struct {
	Compression format.CompressionType `json:"compression"`
	RawLength   uint32                 `json:"rawLength"`
	Checksum    uint64                 `json:"checksum"`
	SealedSize  int                    `json:"sealedSize"`
}

// Seal compresses toon with the given algorithm and wraps it in a container.
//
// Parameters:
//   - toon: Serialized TOON buffer, not modified
//   - ct: Compression applied to the payload
//
// Returns:
//   - []byte: Sealed container
//   - error: ErrInvalidCompressionType for an unknown ct, ErrCountOverflow when
//     toon does not fit the 32-bit length field, or a compression error
func Seal(toon []byte, ct format.CompressionType) ([]byte, error) {
	c, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	if uint64(len(toon)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d byte payload", errs.ErrCountOverflow, len(toon))
	}

	payload, err := c.Compress(toon)
	if err != nil {
		return nil, fmt.Errorf("seal %s payload: %w", ct, err)
	}

	out := make([]byte, HeaderSize+len(payload))
	engine.PutUint16(out[offMagic:], Magic)
	out[offVersion] = Version
	out[offCompression] = uint8(ct)
	engine.PutUint32(out[offRawLength:], uint32(len(toon))) //nolint: gosec
	engine.PutUint64(out[offChecksum:], hash.Checksum(toon))
	copy(out[HeaderSize:], payload)

	return out, nil
}

// SealData serializes d and seals it. The serialized form only lives in a pooled
// scratch buffer; the returned container is the only allocation kept.
func SealData(d *codec.Data, ct format.CompressionType) ([]byte, error) {
	bb := pool.GetSealBuffer()
	defer pool.PutSealBuffer(bb)

	var err error
	if bb.B, err = codec.AppendBinary(bb.B, d); err != nil {
		return nil, err
	}

	return Seal(bb.Bytes(), ct)
}

// Inspect parses the container header of b.
//
// Returns:
//   - Info: Header fields and the total sealed size
//   - error: ErrInvalidContainer or ErrInvalidCompressionType
func Inspect(b []byte) (Info, error) {
	if len(b) < HeaderSize {
		return Info{}, fmt.Errorf("%w: %d bytes, need %d", errs.ErrInvalidContainer, len(b), HeaderSize)
	}
	if m := engine.Uint16(b[offMagic:]); m != Magic {
		return Info{}, fmt.Errorf("%w: magic 0x%04X", errs.ErrInvalidContainer, m)
	}
	if v := b[offVersion]; v != Version {
		return Info{}, fmt.Errorf("%w: version %d", errs.ErrInvalidContainer, v)
	}

	ct := format.CompressionType(b[offCompression])
	if _, err := compress.GetCodec(ct); err != nil {
		return Info{}, err
	}

	return Info{
		Compression: ct,
		RawLength:   engine.Uint32(b[offRawLength:]),
		Checksum:    engine.Uint64(b[offChecksum:]),
		SealedSize:  len(b),
	}, nil
}

// Open verifies a sealed container and returns the TOON buffer inside.
//
// The result never shares memory with b.
//
// Returns:
//   - []byte: The TOON buffer passed to Seal
//   - error: ErrInvalidContainer or ErrInvalidCompressionType for a bad header,
//     ErrChecksumMismatch when the payload does not decompress to rawLength bytes
//     with the recorded checksum
func Open(b []byte) ([]byte, error) {
	info, err := Inspect(b)
	if err != nil {
		return nil, err
	}

	c, err := compress.GetCodec(info.Compression)
	if err != nil {
		return nil, err
	}

	payload := b[HeaderSize:]
	var raw []byte
	if sd, ok := c.(compress.SizedDecompressor); ok {
		raw, err = sd.DecompressSize(payload, int(info.RawLength))
	} else {
		raw, err = c.Decompress(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrChecksumMismatch, err)
	}

	if len(raw) != int(info.RawLength) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header declares %d", errs.ErrChecksumMismatch, len(raw), info.RawLength)
	}
	if !hash.Verify(raw, info.Checksum) {
		return nil, fmt.Errorf("%w: xxhash64 0x%016X, header declares 0x%016X", errs.ErrChecksumMismatch, hash.Checksum(raw), info.Checksum)
	}

	if info.Compression == format.CompressionNone {
		raw = slices.Clone(raw)
	}

	return raw, nil
}

// OpenData opens a sealed container and parses the TOON buffer inside.
func OpenData(b []byte) (*codec.Data, error) {
	raw, err := Open(b)
	if err != nil {
		return nil, err
	}

	return codec.Unmarshal(raw)
}

// IsSealed reports whether b starts with a container header of a supported version.
func IsSealed(b []byte) bool {
	return len(b) >= HeaderSize && engine.Uint16(b[offMagic:]) == Magic && b[offVersion] == Version
}
