package calib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerolab/tsfc/errs"
)

// identityModel builds a degree-1 model whose Eval is the identity over the
// given domain: x = mid + half·u, so coefficients (mid, half) give back x.
func identityModel(t *testing.T, domainMin, domainMax float64) *Model {
	t.Helper()

	m, err := FromRecord(Record{
		Degree:       1,
		Coefficients: []float64{(domainMin + domainMax) / 2, (domainMax - domainMin) / 2},
		DomainMin:    domainMin,
		DomainMax:    domainMax,
		WindowMin:    DefaultWindowMin,
		WindowMax:    DefaultWindowMax,
	})
	require.NoError(t, err)

	return m
}

func TestEvaluatePerfectLinear(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x + 1
	}
	tbl := pairTable(t, xs, ys)

	m, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 1)
	require.NoError(t, err)

	q, err := Evaluate(m, tbl, "TSFC (takeoff)", "TSFC (cruise)")
	require.NoError(t, err)
	require.InDelta(t, 1.0, q.RSquared, 1e-12)
	require.InDelta(t, 0.0, q.RMSE, 1e-10)
	require.Equal(t, 5, q.SampleCount)
}

func TestEvaluateKnownResiduals(t *testing.T) {
	// Identity predictions [1.1, 2.2, 2.9, 4.3, 5.1] against targets
	// [1..5]: RSS = 0.16, TSS = 10, so R² = 0.984.
	m := identityModel(t, 1.1, 5.1)
	tbl := pairTable(t,
		[]float64{1.1, 2.2, 2.9, 4.3, 5.1},
		[]float64{1, 2, 3, 4, 5},
	)

	q, err := Evaluate(m, tbl, "TSFC (takeoff)", "TSFC (cruise)")
	require.NoError(t, err)
	require.InDelta(t, 0.984, q.RSquared, 1e-12)
	require.InDelta(t, math.Sqrt(0.16/5), q.RMSE, 1e-12)
	require.Equal(t, 5, q.SampleCount)
}

func TestEvaluateWorseThanMean(t *testing.T) {
	// Predictions far off target: RSS = 48, TSS = 2, so R² = -23.
	m := identityModel(t, 5, 7)
	tbl := pairTable(t, []float64{5, 6, 7}, []float64{1, 2, 3})

	q, err := Evaluate(m, tbl, "TSFC (takeoff)", "TSFC (cruise)")
	require.NoError(t, err)
	require.InDelta(t, -23.0, q.RSquared, 1e-12)
}

func TestEvaluateConstantTarget(t *testing.T) {
	m := identityModel(t, 1, 5)
	tbl := pairTable(t, []float64{1, 2, 3, 4}, []float64{15.0, 15.0, 15.0, 15.0})

	_, err := Evaluate(m, tbl, "TSFC (takeoff)", "TSFC (cruise)")
	require.ErrorIs(t, err, errs.ErrUndefinedFitQuality)
}

func TestEvaluateHoldOut(t *testing.T) {
	fitTbl := pairTable(t, scenarioTakeoff, scenarioCruise)
	m, err := Fit(fitTbl, "TSFC (takeoff)", "TSFC (cruise)", 1)
	require.NoError(t, err)

	holdOut := pairTable(t, []float64{9.0, 14.0, 17.0}, []float64{19.9, 21.7, 23.0})
	q, err := Evaluate(m, holdOut, "TSFC (takeoff)", "TSFC (cruise)")
	require.NoError(t, err)
	require.Equal(t, 3, q.SampleCount)
	require.LessOrEqual(t, q.RSquared, 1.0)
}

func TestEvaluateFiltersInvalidRows(t *testing.T) {
	m := identityModel(t, 1, 5)
	tbl := pairTable(t,
		[]float64{1, math.NaN(), 3, 5},
		[]float64{1, 2, 3, math.NaN()},
	)

	q, err := Evaluate(m, tbl, "TSFC (takeoff)", "TSFC (cruise)")
	require.NoError(t, err)
	require.Equal(t, 2, q.SampleCount)
}

func TestEvaluateErrors(t *testing.T) {
	m := identityModel(t, 1, 5)

	t.Run("missing column", func(t *testing.T) {
		tbl := pairTable(t, []float64{1, 2}, []float64{3, 4})
		_, err := Evaluate(m, tbl, "TSFC (takeoff)", "Cruise")
		require.ErrorIs(t, err, errs.ErrColumnNotFound)
	})

	t.Run("no valid rows", func(t *testing.T) {
		tbl := pairTable(t, []float64{math.NaN()}, []float64{1})
		_, err := Evaluate(m, tbl, "TSFC (takeoff)", "TSFC (cruise)")
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}
