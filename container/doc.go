// Package container seals serialized TOON buffers for storage or transport.
//
// A sealed container wraps one TOON buffer, optionally compressed, behind a
// 16-byte header that identifies it and guards it with a length and an xxHash64
// checksum of the uncompressed bytes:
//
//	┌──────────┬─────────┬─────────────┬───────────┬──────────┬─────────┐
//	│ magic    │ version │ compression │ rawLength │ checksum │ payload │
//	│ u16      │ u8      │ u8          │ u32       │ u64      │         │
//	│ 0x7E0A   │ 1       │ 1..4        │           │          │         │
//	└──────────┴─────────┴─────────────┴───────────┴──────────┴─────────┘
//
// All fields are little-endian. The TOON buffer inside is not modified, so
// Open(Seal(b)) returns b byte for byte.
//
// Example:
//
//	sealed, err := container.SealData(d, format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	d, err = container.OpenData(sealed)
package container
