package table

import (
	"math"

	"github.com/aerolab/tsfc/format"
)

// Column is a single named, typed column with per-cell validity.
//
// A Column is immutable after construction. Exactly one of the three value
// slices is populated, matching the column type.
type Column struct {
	name    string
	typ     format.ColumnType
	numeric []float64
	text    []string
	bools   []bool
	valid   []bool
}

// NewNumericColumn creates a float64 column. NaN values are stored but
// marked invalid, matching the convention of tabular ingestion tools that
// deliver missing cells as NaN.
func NewNumericColumn(name string, values []float64) *Column {
	valid := make([]bool, len(values))
	for i, v := range values {
		valid[i] = !math.IsNaN(v)
	}

	return &Column{name: name, typ: format.TypeNumeric, numeric: values, valid: valid}
}

// NewNumericColumnWithValidity creates a float64 column with an explicit
// validity mask. The mask length must equal the value length; a nil mask
// marks every cell valid. Cells holding NaN are invalid regardless of the
// mask.
func NewNumericColumnWithValidity(name string, values []float64, valid []bool) *Column {
	v := make([]bool, len(values))
	for i := range values {
		v[i] = (valid == nil || valid[i]) && !math.IsNaN(values[i])
	}

	return &Column{name: name, typ: format.TypeNumeric, numeric: values, valid: v}
}

// NewTextColumn creates a string column with every cell valid.
func NewTextColumn(name string, values []string) *Column {
	valid := make([]bool, len(values))
	for i := range valid {
		valid[i] = true
	}

	return &Column{name: name, typ: format.TypeText, text: values, valid: valid}
}

// NewTextColumnWithValidity creates a string column with an explicit
// validity mask. A nil mask marks every cell valid.
func NewTextColumnWithValidity(name string, values []string, valid []bool) *Column {
	v := make([]bool, len(values))
	for i := range values {
		v[i] = valid == nil || valid[i]
	}

	return &Column{name: name, typ: format.TypeText, text: values, valid: v}
}

// NewBoolColumn creates a boolean column with an explicit validity mask.
// A nil mask marks every cell valid.
func NewBoolColumn(name string, values []bool, valid []bool) *Column {
	v := make([]bool, len(values))
	for i := range values {
		v[i] = valid == nil || valid[i]
	}

	return &Column{name: name, typ: format.TypeBool, bools: values, valid: v}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the column type.
func (c *Column) Type() format.ColumnType { return c.typ }

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.valid) }

// ValidAt reports whether the cell at row i holds a value.
func (c *Column) ValidAt(i int) bool { return c.valid[i] }

// NumericAt returns the float64 value at row i and whether it is valid.
// It returns (0, false) for cells of non-numeric columns.
func (c *Column) NumericAt(i int) (float64, bool) {
	if c.typ != format.TypeNumeric || !c.valid[i] {
		return 0, false
	}

	return c.numeric[i], true
}

// TextAt returns the string value at row i and whether it is valid.
func (c *Column) TextAt(i int) (string, bool) {
	if c.typ != format.TypeText || !c.valid[i] {
		return "", false
	}

	return c.text[i], true
}

// BoolAt returns the boolean value at row i and whether it is valid.
func (c *Column) BoolAt(i int) (bool, bool) {
	if c.typ != format.TypeBool || !c.valid[i] {
		return false, false
	}

	return c.bools[i], true
}
