package calib

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aerolab/tsfc/errs"
	"github.com/aerolab/tsfc/table"
)

// Fit performs a least-squares polynomial fit of yCol against xCol.
//
// Rows where either column is missing or non-finite are excluded from the
// fit (filtered, never treated as zero). The filtered X values define the
// model's domain bounds; X is mapped into the window [-1, 1] before the
// normal system is solved, so the returned coefficients are expressed in
// window coordinates.
//
// Error conditions:
//   - errs.ErrInvalidDegree: degree is not 1 or 2
//   - errs.ErrColumnNotFound / errs.ErrColumnTypeMismatch: schema mismatch
//   - errs.ErrInsufficientData: fewer than degree+1 valid rows, or fewer
//     distinct X values than coefficients
//   - errs.ErrDegenerateDomain: all valid X values identical
//
// Fit is a pure function of its inputs; the table is not modified.
func Fit(tbl *table.Table, xCol, yCol string, degree int) (*Model, error) {
	if degree < 1 || degree > 2 {
		return nil, fmt.Errorf("%w: %d (supported degrees: 1, 2)", errs.ErrInvalidDegree, degree)
	}

	xs, ys, err := validPairs(tbl, xCol, yCol)
	if err != nil {
		return nil, err
	}
	if len(xs) < degree+1 {
		return nil, fmt.Errorf("%w: %d valid rows, degree %d needs at least %d",
			errs.ErrInsufficientData, len(xs), degree, degree+1)
	}

	domainMin, domainMax := xs[0], xs[0]
	for _, x := range xs[1:] {
		domainMin = math.Min(domainMin, x)
		domainMax = math.Max(domainMax, x)
	}
	if domainMin == domainMax {
		return nil, fmt.Errorf("%w: all %d valid x values equal %g",
			errs.ErrDegenerateDomain, len(xs), domainMin)
	}

	m := &Model{
		degree:    degree,
		domainMin: domainMin,
		domainMax: domainMax,
		windowMin: DefaultWindowMin,
		windowMax: DefaultWindowMax,
	}

	// Vandermonde matrix in window coordinates.
	vander := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		u := m.mapToWindow(x)
		p := 1.0
		for j := 0; j <= degree; j++ {
			vander.Set(i, j, p)
			p *= u
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(vander, mat.NewVecDense(len(ys), ys)); err != nil {
		// QR rejects the system when there are fewer distinct x values than
		// coefficients; more of the same rows will not fix that.
		return nil, fmt.Errorf("%w: least squares solve failed: %v", errs.ErrInsufficientData, err)
	}

	m.coeffs = make([]float64, degree+1)
	for j := 0; j <= degree; j++ {
		m.coeffs[j] = coef.AtVec(j)
	}

	return m, nil
}

// validPairs resolves both numeric columns and collects the rows where both
// hold finite values. The same filter is used by Fit and Evaluate so a model
// is always judged against the rows it could have been fit on.
func validPairs(tbl *table.Table, xCol, yCol string) (xs, ys []float64, err error) {
	x, err := tbl.Numeric(xCol)
	if err != nil {
		return nil, nil, err
	}
	y, err := tbl.Numeric(yCol)
	if err != nil {
		return nil, nil, err
	}

	xs = make([]float64, 0, tbl.NumRows())
	ys = make([]float64, 0, tbl.NumRows())
	for i := 0; i < tbl.NumRows(); i++ {
		xv, ok := x.NumericAt(i)
		if !ok || math.IsInf(xv, 0) {
			continue
		}
		yv, ok := y.NumericAt(i)
		if !ok || math.IsInf(yv, 0) {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}

	return xs, ys, nil
}
