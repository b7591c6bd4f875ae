// Package compress provides the compression codecs used by snapshot payloads.
//
// A snapshot payload is a single columnar block (validity bitmaps followed by
// column data), typically a few KB to a few MB. Engine databases contain many
// repeated text prefixes and clustered float ranges, so even fast codecs
// recover most of the redundancy.
//
// Four codecs are available, selected by format.CompressionType:
//
//   - None: pass-through, useful for debugging and tiny tables
//   - Zstd: best ratio, cgo (gozstd) when available, pure Go otherwise
//   - S2: fastest, moderate ratio
//   - LZ4: fast block compression, interoperable with other tooling
//
// All codecs are stateless values and safe for concurrent use.
package compress
