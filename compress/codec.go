package compress

import (
	"fmt"

	"github.com/aerolab/tsfc/errs"
	"github.com/aerolab/tsfc/format"
)

// Compressor compresses a snapshot payload block.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//     (except the no-op codec, which returns the input as-is)
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload block compressed by the matching Compressor.
//
// Implementations validate the input format and return an error if the data
// is corrupted or was produced by an incompatible codec.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// NewCodec returns the codec for the given compression type.
//
// Returns errs.ErrInvalidCompressionType for unknown tags, which the snapshot
// decoder surfaces when it reads a header written by a newer build.
func NewCodec(typ format.CompressionType) (Codec, error) {
	switch typ {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompressionType, uint8(typ))
	}
}
