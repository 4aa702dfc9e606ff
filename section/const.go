package section

import "github.com/Stormrider66/toon/landmark"

// Version is the only format version this package reads and writes.
const Version = 1

// offset and section sizes in the TOON buffer
const (
	HeaderSize           = 128            // fixed header size in bytes, zero padded
	IndicesOffset        = 26             // byte offset of the landmark index list inside the header
	MaxLandmarks         = landmark.Count // maximum landmarks per record
	LandmarkSize         = 8              // bytes per landmark in a record, including one pad byte
	LandmarkPayloadSize  = 7              // bytes per landmark excluding the pad byte
	KeyframePrefixSize   = 8              // frameIndex(u32) + timestamp(f32)
	DeltaFramePrefixSize = 8              // frameIndex(u32) + timestampDelta(u16) + runLength(u16)
)

// header field offsets
const (
	offVersion          = 0
	offMode             = 1
	offLandmarkCount    = 2
	offKeyframeInterval = 4
	offFrameCount       = 6
	offDuration         = 10
	offOriginalSize     = 14
	offCompressedSize   = 18
	offKeyframeCount    = 22
	offDeltaFrameCount  = 24
)

// KeyframeSize returns the on-wire size of a keyframe record holding landmarkCount landmarks.
func KeyframeSize(landmarkCount int) int {
	return KeyframePrefixSize + landmarkCount*LandmarkSize
}

// DeltaFrameSize returns the on-wire size of a delta record holding landmarkCount deltas.
func DeltaFrameSize(landmarkCount int) int {
	return DeltaFramePrefixSize + landmarkCount*LandmarkSize
}

// HeaderCost returns the meaningful header bytes: fixed fields plus the index list.
func HeaderCost(landmarkCount int) int {
	return IndicesOffset + landmarkCount
}

// RecordCost returns the padding-free byte cost of one keyframe or delta record.
//
// Both record kinds share the same cost: an 8-byte prefix plus 7 payload bytes
// per landmark.
func RecordCost(landmarkCount int) int {
	return KeyframePrefixSize + landmarkCount*LandmarkPayloadSize
}

// BufferSize returns the exact serialized size of a buffer with the given counts.
func BufferSize(landmarkCount, keyframeCount, deltaFrameCount int) int {
	return HeaderSize + keyframeCount*KeyframeSize(landmarkCount) + deltaFrameCount*DeltaFrameSize(landmarkCount)
}
