package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Stormrider66/toon/codec"
	"github.com/Stormrider66/toon/container"
	"github.com/Stormrider66/toon/pose"
)

// inputKind names the detected encoding of a TOON input.
type inputKind string

const (
	kindSealed inputKind = "sealed"
	kindBinary inputKind = "binary"
	kindJSON   inputKind = "json"
	kindBase64 inputKind = "base64"
)

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return b, nil
}

// writeOutput writes b to path, or to w when path is "-".
func writeOutput(w io.Writer, path string, b []byte) error {
	if path == "-" {
		_, err := w.Write(b)
		return err
	}

	if err := os.WriteFile(path, b, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// detect reports which TOON encoding b is in. Sealed containers and raw
// buffers are recognized by their headers; text starting with '{' is the
// JSON form and anything else is treated as base64.
func detect(b []byte) inputKind {
	switch {
	case container.IsSealed(b):
		return kindSealed
	case codec.IsTOON(b):
		return kindBinary
	case bytes.HasPrefix(bytes.TrimSpace(b), []byte("{")):
		return kindJSON
	default:
		return kindBase64
	}
}

// loadData parses b in whichever TOON encoding it is in.
func loadData(b []byte) (*codec.Data, inputKind, error) {
	kind := detect(b)

	var (
		d   *codec.Data
		err error
	)
	switch kind {
	case kindSealed:
		d, err = container.OpenData(b)
	case kindBinary:
		d, err = codec.Unmarshal(b)
	case kindJSON:
		d, err = codec.ParseJSON(b)
	case kindBase64:
		d, err = codec.FromBase64(string(bytes.TrimSpace(b)))
	}
	if err != nil {
		return nil, kind, fmt.Errorf("parse %s input: %w", kind, err)
	}

	return d, kind, nil
}

// loadFrames parses a JSON array of pose frames.
func loadFrames(b []byte) ([]pose.Frame, error) {
	var frames []pose.Frame
	if err := json.Unmarshal(b, &frames); err != nil {
		return nil, fmt.Errorf("parse frames: %w", err)
	}

	return frames, nil
}

func marshalIndent(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(b, '\n'), nil
}
