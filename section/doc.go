// Package section defines the low-level binary structures and constants of the TOON
// buffer format.
//
// This package provides the fixed header, the keyframe record and the delta record,
// each with WriteToSlice for writing into a pre-sized buffer and a Parse function
// that bounds-checks before reading. It knows nothing about how records are chosen;
// that is the encoder's job.
//
// # Buffer Structure
//
// All multi-byte values are little-endian. Records follow the header with no
// separators: every keyframe first, then every delta record.
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (128 bytes, fixed, zero padded)                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Keyframe records (K × (8 + 8×L) bytes)                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Delta records (D × (8 + 8×L) bytes)                     │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field               | Type | Description
//	-------|---------------------|------|---------------------------------------
//	0      | Version             | u8   | Always 1
//	1      | Compression code    | u8   | 0=delta, 1=rle, 2=hybrid
//	2-3    | LandmarkCount (L)   | u16  | 1..33
//	4-5    | KeyframeInterval    | u16  | Configured keyframe spacing
//	6-9    | FrameCount          | u32  | Frames in the sequence
//	10-13  | Duration            | f32  | Seconds
//	14-17  | OriginalSize        | u32  | float64 baseline bytes
//	18-21  | CompressedSize      | u32  | Padding-free encoded bytes
//	22-23  | KeyframeCount (K)   | u16  | Keyframe records that follow
//	24-25  | DeltaFrameCount (D) | u16  | Delta records that follow
//	26..   | LandmarkIndices     | u8×L | Retained landmark indices
//	..127  | (pad)               |      | Zero
//
// Every landmark slot in a record occupies 8 bytes: 7 payload bytes and one zero
// pad byte. CompressedSize counts payload bytes only (see HeaderCost and RecordCost),
// while BufferSize gives the exact padded buffer length.
package section
