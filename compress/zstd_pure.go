//go:build !cgo || !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Decoders run single-threaded since payloads are a few KiB, and refuse
// windows larger than maxDecodedSize so a hostile frame cannot force a huge
// allocation.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(maxDecodedSize),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: zstd decoder: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderCRC(false), // the container carries its own checksum
		)
		if err != nil {
			panic(fmt.Sprintf("compress: zstd encoder: %v", err))
		}

		return encoder
	},
}

// Compress compresses data with a pooled encoder. Empty input yields an empty
// payload, matching the other codecs.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	out := encoder.EncodeAll(data, make([]byte, 0, len(data)/2+64))
	zstdEncoderPool.Put(encoder)

	return out, nil
}

// Decompress decompresses a zstd frame of unknown original length.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.decodeInto(nil, data)
}

// decodeInto appends the decoded frame to dst. A failed call leaves the pooled
// decoder reusable.
func (c ZstdCompressor) decodeInto(dst, data []byte) ([]byte, error) {
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
