package table

import (
	"fmt"

	"github.com/aerolab/tsfc/errs"
	"github.com/aerolab/tsfc/format"
)

// Table is an ordered collection of columns sharing a common row count.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New creates a table from the given columns.
//
// All columns must have equal length and distinct names. A table with no
// columns is valid and has zero rows.
func New(cols ...*Column) (*Table, error) {
	t := &Table{
		cols:  make([]*Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	if len(cols) > 0 {
		t.rows = cols[0].Len()
	}

	for _, col := range cols {
		if col.Len() != t.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				errs.ErrLengthMismatch, col.Name(), col.Len(), t.rows)
		}
		if _, exists := t.index[col.Name()]; exists {
			return nil, fmt.Errorf("%w: %q", errs.ErrColumnExists, col.Name())
		}
		t.index[col.Name()] = len(t.cols)
		t.cols = append(t.cols, col)
	}

	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the columns in schema order. The returned slice is a copy;
// the columns themselves are shared.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.cols))
	copy(out, t.cols)

	return out
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}

	return t.cols[idx], nil
}

// Numeric returns the numeric column with the given name, failing fast on
// schema mismatches so callers never hit a numeric failure later.
func (t *Table) Numeric(name string) (*Column, error) {
	return t.typedColumn(name, format.TypeNumeric)
}

// Text returns the text column with the given name.
func (t *Table) Text(name string) (*Column, error) {
	return t.typedColumn(name, format.TypeText)
}

// Bool returns the boolean column with the given name.
func (t *Table) Bool(name string) (*Column, error) {
	return t.typedColumn(name, format.TypeBool)
}

func (t *Table) typedColumn(name string, typ format.ColumnType) (*Column, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if col.Type() != typ {
		return nil, fmt.Errorf("%w: column %q is %s, expected %s",
			errs.ErrColumnTypeMismatch, name, col.Type(), typ)
	}

	return col, nil
}

// WithColumn returns a new table holding all columns of t plus col.
//
// The source table is not modified; existing columns are shared, not copied.
// The new column must match the table's row count and must not shadow an
// existing name.
func (t *Table) WithColumn(col *Column) (*Table, error) {
	if col.Len() != t.rows {
		return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
			errs.ErrLengthMismatch, col.Name(), col.Len(), t.rows)
	}
	if t.HasColumn(col.Name()) {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnExists, col.Name())
	}

	out := &Table{
		cols:  make([]*Column, 0, len(t.cols)+1),
		index: make(map[string]int, len(t.cols)+1),
		rows:  t.rows,
	}
	out.cols = append(out.cols, t.cols...)
	out.cols = append(out.cols, col)
	for i, c := range out.cols {
		out.index[c.Name()] = i
	}

	return out, nil
}
