package format

type (
	CompressionType uint8
	ColumnType      uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	TypeNumeric ColumnType = 0x1 // TypeNumeric represents a float64 column.
	TypeText    ColumnType = 0x2 // TypeText represents a string column.
	TypeBool    ColumnType = 0x3 // TypeBool represents a boolean column.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (t ColumnType) String() string {
	switch t {
	case TypeNumeric:
		return "Numeric"
	case TypeText:
		return "Text"
	case TypeBool:
		return "Bool"
	default:
		return "Unknown"
	}
}
