// Package encoding implements the keyframe, delta and run-length decisions that
// turn a sequence of pose frames into TOON records.
//
// This package is internal to the toon module. Use the codec package, or the
// Compress function of the root package, to build complete TOON data.
package encoding
