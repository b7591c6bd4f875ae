// Package snapshot provides a compact binary persistence format for tables
// and calibration models.
//
// A table snapshot is a single self-describing byte slice:
//
//	magic (uint32) | version (uint8) | compression (uint8) |
//	column count (uint16) | row count (uint32) |
//	column index: name length (uint16), name bytes, type (uint8),
//	              payload length (uint32) per column |
//	compressed payload length (uint32) | compressed payload block |
//	checksum (uint64, xxHash64 of the uncompressed payload block)
//
// All integers are little-endian. The payload block concatenates each
// column's cells in index order: a validity bitmap first, then the cell
// values (float64 bits for numeric columns, length-prefixed bytes for text
// columns, a second bitmap for boolean columns). The whole block is
// compressed once with the codec named in the header, so the column index
// stays readable without decompression.
//
// Model snapshots reuse the same header and checksum framing around the
// model's JSON record, trading a few bytes for a format that stays
// debuggable with standard tools.
package snapshot
