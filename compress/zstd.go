package compress

// ZstdCompressor implements the Codec interface using Zstandard compression.
//
// Two implementations are selected at build time: a cgo-backed one (gozstd)
// when cgo is available, and a pure Go one (klauspost/compress/zstd)
// otherwise. Both produce interchangeable zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
