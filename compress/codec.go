// Package compress provides the compression codecs applied to blob payloads
// of packed fraction words.
//
// Compression is applied to the whole payload after the words are packed;
// the algorithm in use is recorded in the blob header flag so the decoder
// can select the matching codec.
package compress

import (
	"fmt"

	"github.com/arloliu/fracbits/format"
)

// Compressor compresses a complete blob payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the matching
// algorithm.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// payload. Returns an error if the data is corrupted or was compressed
	// with an incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless and safe
// for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given compression type. The target
// string names the payload being processed and only appears in error
// messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}
