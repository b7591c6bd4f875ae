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
	"github.com/aerolab/tsfc/internal/options"
	"github.com/aerolab/tsfc/table"
)

const (
	// tableMagic is "TBLS" in little-endian byte order.
	tableMagic = uint32(0x534C4254)
	// modelMagic is "MDLS" in little-endian byte order.
	modelMagic = uint32(0x534C444D)

	snapshotVersion = uint8(1)

	// Fixed header: magic(4) + version(1) + compression(1) + columns(2) + rows(4).
	tableHeaderSize = 12
	// Fixed header: magic(4) + version(1) + compression(1).
	modelHeaderSize = 6
)

// EncodeConfig holds encoder settings, adjusted via EncodeOption values.
type EncodeConfig struct {
	Compression format.CompressionType
}

// EncodeOption configures an encode call.
type EncodeOption = options.Option[*EncodeConfig]

// WithCompression selects the codec used for the payload block.
// The default is no compression.
func WithCompression(typ format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if _, err := compress.NewCodec(typ); err != nil {
			return err
		}
		cfg.Compression = typ

		return nil
	})
}

// EncodeTable serializes a table into the snapshot wire format.
func EncodeTable(tbl *table.Table, opts ...EncodeOption) ([]byte, error) {
	cfg := &EncodeConfig{Compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	codec, err := compress.NewCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	cols := tbl.Columns()
	if len(cols) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d columns, index holds at most %d",
			errs.ErrSnapshotLimitExceeded, len(cols), math.MaxUint16)
	}
	for _, col := range cols {
		if len(col.Name()) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: column name of %d bytes, index holds at most %d",
				errs.ErrSnapshotLimitExceeded, len(col.Name()), math.MaxUint16)
		}
	}

	var payload []byte
	payloadLens := make([]uint32, len(cols))
	for i, col := range cols {
		start := len(payload)
		payload = appendColumnPayload(payload, col)
		payloadLens[i] = uint32(len(payload) - start)
	}

	sum := hash.Sum64(payload)
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, tableHeaderSize+len(compressed)+16)
	out = binary.LittleEndian.AppendUint32(out, tableMagic)
	out = append(out, snapshotVersion, uint8(cfg.Compression))
	out = binary.LittleEndian.AppendUint16(out, uint16(len(cols)))
	out = binary.LittleEndian.AppendUint32(out, uint32(tbl.NumRows()))

	for i, col := range cols {
		name := col.Name()
		out = binary.LittleEndian.AppendUint16(out, uint16(len(name)))
		out = append(out, name...)
		out = append(out, uint8(col.Type()))
		out = binary.LittleEndian.AppendUint32(out, payloadLens[i])
	}

	out = binary.LittleEndian.AppendUint32(out, uint32(len(compressed)))
	out = append(out, compressed...)
	out = binary.LittleEndian.AppendUint64(out, sum)

	return out, nil
}

// EncodeModel serializes a calibration model into the snapshot wire format.
//
// The payload is the model's JSON record, framed with the same header,
// compression and checksum scheme as table snapshots.
func EncodeModel(m *calib.Model, opts ...EncodeOption) ([]byte, error) {
	cfg := &EncodeConfig{Compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	codec, err := compress.NewCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}

	sum := hash.Sum64(payload)
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, modelHeaderSize+len(compressed)+12)
	out = binary.LittleEndian.AppendUint32(out, modelMagic)
	out = append(out, snapshotVersion, uint8(cfg.Compression))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(compressed)))
	out = append(out, compressed...)
	out = binary.LittleEndian.AppendUint64(out, sum)

	return out, nil
}

func appendColumnPayload(b []byte, col *table.Column) []byte {
	rows := col.Len()
	valid := make([]bool, rows)
	for i := range valid {
		valid[i] = col.ValidAt(i)
	}
	b = append(b, packBitmap(valid)...)

	switch col.Type() {
	case format.TypeNumeric:
		for i := 0; i < rows; i++ {
			v, _ := col.NumericAt(i)
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
		}
	case format.TypeText:
		for i := 0; i < rows; i++ {
			s, _ := col.TextAt(i)
			b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
			b = append(b, s...)
		}
	case format.TypeBool:
		vals := make([]bool, rows)
		for i := range vals {
			vals[i], _ = col.BoolAt(i)
		}
		b = append(b, packBitmap(vals)...)
	}

	return b
}

// packBitmap packs bits LSB-first into ceil(len/8) bytes.
func packBitmap(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << (i % 8)
		}
	}

	return out
}
