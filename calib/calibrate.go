package calib

import (
	"fmt"

	"github.com/aerolab/tsfc/internal/options"
	"github.com/aerolab/tsfc/table"
)

// Result bundles the outcome of a full calibration run: both candidate
// models, their qualities, and the model selected by the parsimony rule.
type Result struct {
	// Linear is the degree-1 candidate.
	Linear *Model
	// Quadratic is the degree-2 candidate.
	Quadratic *Model
	// LinearQuality is the fit quality of the linear candidate.
	LinearQuality FitQuality
	// QuadraticQuality is the fit quality of the quadratic candidate.
	QuadraticQuality FitQuality
	// Selected is the candidate chosen by SelectModel.
	Selected *Model
}

// SelectedQuality returns the fit quality of the selected model.
func (r *Result) SelectedQuality() FitQuality {
	if r.Selected == r.Quadratic {
		return r.QuadraticQuality
	}

	return r.LinearQuality
}

// String returns a human-readable summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Selected: %s, %s}", r.Selected, r.SelectedQuality())
}

// CalibrateConfig holds configuration for Calibrate.
type CalibrateConfig struct {
	Threshold float64
}

// CalibrateOption is a functional option for CalibrateConfig.
type CalibrateOption = options.Option[*CalibrateConfig]

// WithSelectionThreshold overrides the R² improvement threshold used by the
// model selection policy. The threshold must not be negative.
func WithSelectionThreshold(threshold float64) CalibrateOption {
	return options.New(func(cfg *CalibrateConfig) error {
		if threshold < 0 {
			return fmt.Errorf("selection threshold must not be negative, got %g", threshold)
		}
		cfg.Threshold = threshold

		return nil
	})
}

// Calibrate fits both candidate degrees, evaluates both on the fitting data,
// and selects one model per the threshold rule.
//
// It requires enough valid rows for the quadratic fit (at least 3). Callers
// with only two valid rows should Fit degree 1 directly. On the same input,
// repeated runs produce identical results; there is no randomness anywhere
// in the pipeline.
func Calibrate(tbl *table.Table, xCol, yCol string, opts ...CalibrateOption) (*Result, error) {
	cfg := CalibrateConfig{Threshold: DefaultSelectionThreshold}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	linear, err := Fit(tbl, xCol, yCol, 1)
	if err != nil {
		return nil, fmt.Errorf("linear fit: %w", err)
	}
	quadratic, err := Fit(tbl, xCol, yCol, 2)
	if err != nil {
		return nil, fmt.Errorf("quadratic fit: %w", err)
	}

	linearQuality, err := Evaluate(linear, tbl, xCol, yCol)
	if err != nil {
		return nil, fmt.Errorf("linear evaluation: %w", err)
	}
	quadraticQuality, err := Evaluate(quadratic, tbl, xCol, yCol)
	if err != nil {
		return nil, fmt.Errorf("quadratic evaluation: %w", err)
	}

	return &Result{
		Linear:           linear,
		Quadratic:        quadratic,
		LinearQuality:    linearQuality,
		QuadraticQuality: quadraticQuality,
		Selected:         SelectModel(linear, linearQuality, quadratic, quadraticQuality, cfg.Threshold),
	}, nil
}
