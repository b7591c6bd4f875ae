package calib

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/aerolab/tsfc/errs"
	"github.com/aerolab/tsfc/table"
)

// Evaluate computes the goodness of fit of a model against a table.
//
// The table is typically the one the model was fit on, but any table with
// compatible columns is accepted, which enables cross-validation against
// held-out data. Rows are filtered with the same finiteness rules as Fit.
//
// R² = 1 − RSS/TSS, where RSS is the sum of squared residuals between
// predicted and actual Y and TSS the sum of squared deviations of actual Y
// from its mean. When the actual Y values are constant, TSS is zero and R²
// is undefined; Evaluate surfaces errs.ErrUndefinedFitQuality instead of
// silently returning a numeric value.
func Evaluate(m *Model, tbl *table.Table, xCol, yCol string) (FitQuality, error) {
	xs, ys, err := validPairs(tbl, xCol, yCol)
	if err != nil {
		return FitQuality{}, err
	}
	if len(xs) == 0 {
		return FitQuality{}, fmt.Errorf("%w: no valid rows to evaluate", errs.ErrInsufficientData)
	}

	meanY := stat.Mean(ys, nil)

	var tss, rss float64
	for i, x := range xs {
		dev := ys[i] - meanY
		tss += dev * dev
		res := ys[i] - m.Eval(x)
		rss += res * res
	}

	if tss == 0 {
		return FitQuality{}, fmt.Errorf("%w: target column %q is constant over %d rows",
			errs.ErrUndefinedFitQuality, yCol, len(ys))
	}

	return FitQuality{
		RSquared:    1 - rss/tss,
		RMSE:        math.Sqrt(rss / float64(len(ys))),
		SampleCount: len(ys),
	}, nil
}
