package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/aerolab/tsfc/calib"
	"github.com/aerolab/tsfc/compress"
	"github.com/aerolab/tsfc/errs"
	"github.com/aerolab/tsfc/format"
	"github.com/aerolab/tsfc/internal/hash"
	"github.com/aerolab/tsfc/table"
)

// DecodeTable reconstructs a table from snapshot bytes produced by EncodeTable.
//
// Error conditions:
//   - errs.ErrInvalidHeaderSize: data shorter than the fixed header
//   - errs.ErrInvalidMagic: not a table snapshot
//   - errs.ErrUnsupportedVersion: written by an incompatible build
//   - errs.ErrInvalidCompressionType: unknown codec tag
//   - errs.ErrTruncatedPayload: any section shorter than its declared length
//   - errs.ErrChecksumMismatch: payload corrupted in storage or transit
func DecodeTable(data []byte) (*table.Table, error) {
	if len(data) < tableHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != tableMagic {
		return nil, fmt.Errorf("%w: 0x%08x", errs.ErrInvalidMagic, magic)
	}
	if version := data[4]; version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	codec, err := compress.NewCodec(format.CompressionType(data[5]))
	if err != nil {
		return nil, err
	}

	colCount := int(binary.LittleEndian.Uint16(data[6:8]))
	rows := int(binary.LittleEndian.Uint32(data[8:12]))
	r := &reader{data: data, off: tableHeaderSize}

	type colMeta struct {
		name       string
		typ        format.ColumnType
		payloadLen int
	}
	metas := make([]colMeta, colCount)
	totalLen := 0
	for i := range metas {
		nameLen, err := r.uint16()
		if err != nil {
			return nil, err
		}
		name, err := r.bytes(int(nameLen))
		if err != nil {
			return nil, err
		}
		typ, err := r.byte()
		if err != nil {
			return nil, err
		}
		payloadLen, err := r.uint32()
		if err != nil {
			return nil, err
		}
		metas[i] = colMeta{name: string(name), typ: format.ColumnType(typ), payloadLen: int(payloadLen)}
		totalLen += int(payloadLen)
	}

	payload, err := readChecksummedBlock(r, codec)
	if err != nil {
		return nil, err
	}
	if len(payload) != totalLen {
		return nil, fmt.Errorf("%w: payload block is %d bytes, column index declares %d",
			errs.ErrTruncatedPayload, len(payload), totalLen)
	}

	cols := make([]*table.Column, colCount)
	pr := &reader{data: payload}
	for i, meta := range metas {
		col, err := decodeColumn(pr, meta.name, meta.typ, rows)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	return table.New(cols...)
}

// DecodeModel reconstructs a calibration model from snapshot bytes produced
// by EncodeModel. The payload is validated through calib.FromRecord, so a
// decoded model is always usable.
func DecodeModel(data []byte) (*calib.Model, error) {
	if len(data) < modelHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != modelMagic {
		return nil, fmt.Errorf("%w: 0x%08x", errs.ErrInvalidMagic, magic)
	}
	if version := data[4]; version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	codec, err := compress.NewCodec(format.CompressionType(data[5]))
	if err != nil {
		return nil, err
	}

	payload, err := readChecksummedBlock(&reader{data: data, off: modelHeaderSize}, codec)
	if err != nil {
		return nil, err
	}

	return calib.UnmarshalModel(payload)
}

// readChecksummedBlock reads a length-prefixed compressed block followed by
// an xxHash64 checksum, decompresses it and verifies the checksum against
// the uncompressed bytes.
func readChecksummedBlock(r *reader, codec compress.Codec) ([]byte, error) {
	compressedLen, err := r.uint32()
	if err != nil {
		return nil, err
	}
	compressed, err := r.bytes(int(compressedLen))
	if err != nil {
		return nil, err
	}
	want, err := r.uint64()
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}
	if got := hash.Sum64(payload); got != want {
		return nil, fmt.Errorf("%w: got 0x%016x, want 0x%016x", errs.ErrChecksumMismatch, got, want)
	}

	return payload, nil
}

func decodeColumn(r *reader, name string, typ format.ColumnType, rows int) (*table.Column, error) {
	bitmap, err := r.bytes((rows + 7) / 8)
	if err != nil {
		return nil, err
	}
	valid := unpackBitmap(bitmap, rows)

	switch typ {
	case format.TypeNumeric:
		values := make([]float64, rows)
		for i := range values {
			bits, err := r.uint64()
			if err != nil {
				return nil, err
			}
			values[i] = math.Float64frombits(bits)
		}

		return table.NewNumericColumnWithValidity(name, values, valid), nil

	case format.TypeText:
		values := make([]string, rows)
		for i := range values {
			n, err := r.uint32()
			if err != nil {
				return nil, err
			}
			raw, err := r.bytes(int(n))
			if err != nil {
				return nil, err
			}
			values[i] = string(raw)
		}

		return table.NewTextColumnWithValidity(name, values, valid), nil

	case format.TypeBool:
		bits, err := r.bytes((rows + 7) / 8)
		if err != nil {
			return nil, err
		}

		return table.NewBoolColumn(name, unpackBitmap(bits, rows), valid), nil

	default:
		return nil, fmt.Errorf("%w: column %q has unknown type 0x%02x",
			errs.ErrColumnTypeMismatch, name, uint8(typ))
	}
}

func unpackBitmap(data []byte, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = data[i/8]&(1<<(i%8)) != 0
	}

	return out
}

// reader is a bounds-checked cursor over snapshot bytes. Every read past the
// end surfaces errs.ErrTruncatedPayload instead of panicking.
type reader struct {
	data []byte
	off  int
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrTruncatedPayload, n, r.off, len(r.data)-r.off)
	}
	out := r.data[r.off : r.off+n]
	r.off += n

	return out, nil
}

func (r *reader) byte() (byte, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) uint64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}
