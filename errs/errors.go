// Package errs defines the sentinel error values shared across the module.
//
// All public operations detect violations locally and surface one of these
// sentinels, usually wrapped with context via fmt.Errorf("%w: ...").
// Callers match them with errors.Is.
package errs

import "errors"

// Fitting and evaluation errors.
var (
	// ErrColumnNotFound indicates a requested column name is absent from the
	// table schema. This is always a caller bug and is never recovered.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnTypeMismatch indicates a column exists but has the wrong type
	// for the requested operation (e.g. a text column used as fit input).
	ErrColumnTypeMismatch = errors.New("column type mismatch")

	// ErrInsufficientData indicates fewer valid rows than the requested
	// polynomial degree requires, or a rank-deficient fit system caused by
	// too few distinct X values.
	ErrInsufficientData = errors.New("insufficient data for fit")

	// ErrDegenerateDomain indicates all valid X values are identical, so the
	// domain bounds collapse and the window mapping is undefined.
	ErrDegenerateDomain = errors.New("degenerate fit domain")

	// ErrUndefinedFitQuality indicates the target column has zero variance,
	// making the coefficient of determination undefined.
	ErrUndefinedFitQuality = errors.New("undefined fit quality")

	// ErrInvalidDegree indicates a polynomial degree outside the supported
	// set (1 for linear, 2 for quadratic).
	ErrInvalidDegree = errors.New("invalid polynomial degree")

	// ErrInvalidModelRecord indicates a serialized model record that fails
	// validation (coefficient count, domain or window bounds).
	ErrInvalidModelRecord = errors.New("invalid model record")
)

// Table construction errors.
var (
	// ErrColumnExists indicates an attempt to add a column whose name is
	// already present in the table.
	ErrColumnExists = errors.New("column already exists")

	// ErrLengthMismatch indicates columns of unequal length in a single table.
	ErrLengthMismatch = errors.New("column length mismatch")
)

// Snapshot decoding errors.
var (
	// ErrInvalidMagic indicates the data does not start with a snapshot magic number.
	ErrInvalidMagic = errors.New("invalid snapshot magic")

	// ErrUnsupportedVersion indicates a snapshot version this build cannot decode.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrInvalidHeaderSize indicates the data is too short to contain a snapshot header.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidCompressionType indicates an unknown compression tag in the header.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrTruncatedPayload indicates the payload section is shorter than the
	// header-declared length.
	ErrTruncatedPayload = errors.New("truncated snapshot payload")

	// ErrChecksumMismatch indicates the payload checksum does not match,
	// meaning the snapshot is corrupted.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrSnapshotLimitExceeded indicates a table that cannot be represented
	// in the snapshot format, such as a column name longer than 64 KiB.
	ErrSnapshotLimitExceeded = errors.New("snapshot limit exceeded")
)
