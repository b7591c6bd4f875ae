package calib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerolab/tsfc/errs"
	"github.com/aerolab/tsfc/table"
)

// Observed takeoff/cruise TSFC pairs used across the fit tests, in g/(kN·s).
var (
	scenarioTakeoff = []float64{7.72, 10.0, 13.0, 15.0, 18.37}
	scenarioCruise  = []float64{19.5, 20.1, 21.3, 22.0, 23.8}
)

func pairTable(t *testing.T, xs, ys []float64) *table.Table {
	t.Helper()

	tbl, err := table.New(
		table.NewNumericColumn("TSFC (takeoff)", xs),
		table.NewNumericColumn("TSFC (cruise)", ys),
	)
	require.NoError(t, err)

	return tbl
}

func TestFitPerfectLinear(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x + 1
	}
	tbl := pairTable(t, xs, ys)

	m, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 1)
	require.NoError(t, err)
	require.Equal(t, 1, m.Degree())

	dmin, dmax := m.Domain()
	require.Equal(t, 1.0, dmin)
	require.Equal(t, 5.0, dmax)

	// In window coordinates x = 3 + 2u, so y = 2x+1 = 7 + 4u.
	coeffs := m.Coefficients()
	require.InDelta(t, 7.0, coeffs[0], 1e-10)
	require.InDelta(t, 4.0, coeffs[1], 1e-10)

	for i, x := range xs {
		require.InDelta(t, ys[i], m.Eval(x), 1e-10)
	}
}

func TestFitQuadraticExact(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}
	tbl := pairTable(t, xs, ys)

	m, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 2)
	require.NoError(t, err)

	// x = 2 + 2u, so x² = 4 + 8u + 4u².
	coeffs := m.Coefficients()
	require.InDelta(t, 4.0, coeffs[0], 1e-9)
	require.InDelta(t, 8.0, coeffs[1], 1e-9)
	require.InDelta(t, 4.0, coeffs[2], 1e-9)

	for i, x := range xs {
		require.InDelta(t, ys[i], m.Eval(x), 1e-9)
	}
}

// referenceLinear solves the degree-1 least squares problem in window
// coordinates directly from the closed-form normal equations.
func referenceLinear(us, ys []float64) (c0, c1 float64) {
	n := float64(len(us))
	var sumU, sumY, sumUY, sumU2 float64
	for i := range us {
		sumU += us[i]
		sumY += ys[i]
		sumUY += us[i] * ys[i]
		sumU2 += us[i] * us[i]
	}
	meanU := sumU / n
	meanY := sumY / n
	c1 = (sumUY - n*meanU*meanY) / (sumU2 - n*meanU*meanU)
	c0 = meanY - c1*meanU

	return c0, c1
}

// referenceQuadratic solves the degree-2 normal equations with Cramer's rule.
func referenceQuadratic(us, ys []float64) (c0, c1, c2 float64) {
	n := float64(len(us))
	var sU, sU2, sU3, sU4, sY, sUY, sU2Y float64
	for i := range us {
		u := us[i]
		u2 := u * u
		sU += u
		sU2 += u2
		sU3 += u2 * u
		sU4 += u2 * u2
		sY += ys[i]
		sUY += u * ys[i]
		sU2Y += u2 * ys[i]
	}

	det := n*(sU2*sU4-sU3*sU3) - sU*(sU*sU4-sU3*sU2) + sU2*(sU*sU3-sU2*sU2)
	c0 = (sY*(sU2*sU4-sU3*sU3) - sU*(sUY*sU4-sU3*sU2Y) + sU2*(sUY*sU3-sU2*sU2Y)) / det
	c1 = (n*(sUY*sU4-sU3*sU2Y) - sY*(sU*sU4-sU3*sU2) + sU2*(sU*sU2Y-sUY*sU2)) / det
	c2 = (n*(sU2*sU2Y-sUY*sU3) - sU*(sU*sU2Y-sUY*sU2) + sY*(sU*sU3-sU2*sU2)) / det

	return c0, c1, c2
}

func TestFitMatchesReferenceSolver(t *testing.T) {
	tbl := pairTable(t, scenarioTakeoff, scenarioCruise)

	// Recompute the window coordinates the fitter uses.
	dmin, dmax := scenarioTakeoff[0], scenarioTakeoff[len(scenarioTakeoff)-1]
	us := make([]float64, len(scenarioTakeoff))
	for i, x := range scenarioTakeoff {
		us[i] = -1 + (x-dmin)*2/(dmax-dmin)
	}

	t.Run("degree 1", func(t *testing.T) {
		m, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 1)
		require.NoError(t, err)

		c0, c1 := referenceLinear(us, scenarioCruise)
		coeffs := m.Coefficients()
		require.InDelta(t, c0, coeffs[0], 1e-8)
		require.InDelta(t, c1, coeffs[1], 1e-8)
	})

	t.Run("degree 2", func(t *testing.T) {
		m, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 2)
		require.NoError(t, err)

		c0, c1, c2 := referenceQuadratic(us, scenarioCruise)
		coeffs := m.Coefficients()
		require.InDelta(t, c0, coeffs[0], 1e-8)
		require.InDelta(t, c1, coeffs[1], 1e-8)
		require.InDelta(t, c2, coeffs[2], 1e-8)
	})
}

func TestFitFiltersInvalidRows(t *testing.T) {
	clean := pairTable(t, []float64{7.72, 10.0, 13.0}, []float64{19.5, 20.1, 21.3})
	dirty := pairTable(t,
		[]float64{7.72, math.NaN(), 10.0, 13.0, math.Inf(1)},
		[]float64{19.5, 20.0, 20.1, 21.3, 22.0},
	)

	mClean, err := Fit(clean, "TSFC (takeoff)", "TSFC (cruise)", 1)
	require.NoError(t, err)
	mDirty, err := Fit(dirty, "TSFC (takeoff)", "TSFC (cruise)", 1)
	require.NoError(t, err)

	require.Equal(t, mClean.Coefficients(), mDirty.Coefficients())

	dmin, dmax := mDirty.Domain()
	require.Equal(t, 7.72, dmin)
	require.Equal(t, 13.0, dmax)
}

func TestFitErrors(t *testing.T) {
	t.Run("one valid row degree 2", func(t *testing.T) {
		tbl := pairTable(t,
			[]float64{12.0, math.NaN(), math.NaN()},
			[]float64{19.5, 20.0, 21.0},
		)
		_, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 2)
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})

	t.Run("degenerate domain", func(t *testing.T) {
		tbl := pairTable(t, []float64{12.0, 12.0, 12.0}, []float64{19.5, 20.0, 21.0})
		_, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 1)
		require.ErrorIs(t, err, errs.ErrDegenerateDomain)
	})

	t.Run("missing column", func(t *testing.T) {
		tbl := pairTable(t, []float64{1, 2}, []float64{3, 4})
		_, err := Fit(tbl, "TSFC (T/O)", "TSFC (cruise)", 1)
		require.ErrorIs(t, err, errs.ErrColumnNotFound)
	})

	t.Run("text column as input", func(t *testing.T) {
		tbl, err := table.New(
			table.NewTextColumn("Engine Identification", []string{"a", "b"}),
			table.NewNumericColumn("TSFC (cruise)", []float64{1, 2}),
		)
		require.NoError(t, err)

		_, err = Fit(tbl, "Engine Identification", "TSFC (cruise)", 1)
		require.ErrorIs(t, err, errs.ErrColumnTypeMismatch)
	})

	t.Run("unsupported degree", func(t *testing.T) {
		tbl := pairTable(t, []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
		for _, degree := range []int{0, 3, -1} {
			_, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", degree)
			require.ErrorIs(t, err, errs.ErrInvalidDegree)
		}
	})

	t.Run("two distinct x values degree 2", func(t *testing.T) {
		tbl := pairTable(t, []float64{10, 10, 15, 15}, []float64{1, 2, 3, 4})
		_, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 2)
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestCurve(t *testing.T) {
	tbl := pairTable(t, scenarioTakeoff, scenarioCruise)
	m, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 1)
	require.NoError(t, err)

	xs, ys := Curve(m, 100)
	require.Len(t, xs, 100)
	require.Len(t, ys, 100)

	dmin, dmax := m.Domain()
	require.InDelta(t, dmin-5, xs[0], 1e-12)
	require.InDelta(t, dmax+5, xs[len(xs)-1], 1e-12)
	for i := range xs {
		require.Equal(t, m.Eval(xs[i]), ys[i])
	}
}
