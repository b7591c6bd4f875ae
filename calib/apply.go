package calib

import (
	"math"

	"github.com/aerolab/tsfc/internal/options"
	"github.com/aerolab/tsfc/table"
)

// ApplyConfig holds the output-column policy for Apply.
type ApplyConfig struct {
	// PredictedColumn names the appended prediction column.
	PredictedColumn string
	// FlagColumn names the appended extrapolation-flag column.
	FlagColumn string
	// FlagExtrapolation controls whether the flag column is emitted at all.
	FlagExtrapolation bool
}

func defaultApplyConfig() ApplyConfig {
	return ApplyConfig{
		PredictedColumn:   "TSFC (cruise)",
		FlagColumn:        "Extrapolated",
		FlagExtrapolation: true,
	}
}

// ApplyOption is a functional option for ApplyConfig.
type ApplyOption = options.Option[*ApplyConfig]

// WithPredictedColumn sets the name of the appended prediction column.
func WithPredictedColumn(name string) ApplyOption {
	return options.NoError(func(cfg *ApplyConfig) {
		cfg.PredictedColumn = name
	})
}

// WithFlagColumn sets the name of the appended extrapolation-flag column.
func WithFlagColumn(name string) ApplyOption {
	return options.NoError(func(cfg *ApplyConfig) {
		cfg.FlagColumn = name
	})
}

// WithoutExtrapolationFlag suppresses the flag column entirely, for callers
// that accept every prediction at face value.
func WithoutExtrapolationFlag() ApplyOption {
	return options.NoError(func(cfg *ApplyConfig) {
		cfg.FlagExtrapolation = false
	})
}

// Apply scores every row of a table with a fitted model.
//
// The result is a new table holding all columns of the input plus a
// predicted column and, by default, a boolean extrapolation-flag column.
// The input table is not mutated.
//
// Rows whose X falls outside the model's domain bounds are still scored
// (the window mapping and polynomial are well-defined there) but flagged,
// so callers needing strict interpolation-only behavior can filter on the
// flag. Rows with missing or non-finite X pass through unscored: both
// appended cells stay invalid rather than holding a sentinel.
//
// Apply fails with errs.ErrColumnNotFound or errs.ErrColumnTypeMismatch on
// a malformed schema, and with errs.ErrColumnExists when an output column
// name collides with an existing column.
func Apply(m *Model, tbl *table.Table, xCol string, opts ...ApplyOption) (*table.Table, error) {
	cfg := defaultApplyConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	x, err := tbl.Numeric(xCol)
	if err != nil {
		return nil, err
	}

	rows := tbl.NumRows()
	predicted := make([]float64, rows)
	extrapolated := make([]bool, rows)
	valid := make([]bool, rows)

	for i := 0; i < rows; i++ {
		xv, ok := x.NumericAt(i)
		if !ok || math.IsInf(xv, 0) {
			continue
		}
		predicted[i] = m.Eval(xv)
		extrapolated[i] = !m.Contains(xv)
		valid[i] = true
	}

	out, err := tbl.WithColumn(table.NewNumericColumnWithValidity(cfg.PredictedColumn, predicted, valid))
	if err != nil {
		return nil, err
	}
	if !cfg.FlagExtrapolation {
		return out, nil
	}

	return out.WithColumn(table.NewBoolColumn(cfg.FlagColumn, extrapolated, valid))
}
