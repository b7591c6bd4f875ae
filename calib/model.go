package calib

import "fmt"

// Evaluation window bounds shared by all models. Inputs are affinely mapped
// from the fit domain into this range before the polynomial is evaluated.
const (
	DefaultWindowMin = -1.0
	DefaultWindowMax = 1.0
)

// Model is the immutable result of a polynomial fit.
//
// It holds the polynomial coefficients expressed in window coordinates
// (lowest degree first), the domain bounds the fit observed, and the window
// bounds used for normalization. A Model is a pure value: it never changes
// after creation, may be shared freely between goroutines, and can be
// serialized via Record for reuse across process invocations.
type Model struct {
	degree    int
	coeffs    []float64
	domainMin float64
	domainMax float64
	windowMin float64
	windowMax float64
}

// Degree returns the polynomial degree (1 or 2).
func (m *Model) Degree() int { return m.degree }

// Coefficients returns a copy of the polynomial coefficients in window
// coordinates, lowest degree first.
func (m *Model) Coefficients() []float64 {
	out := make([]float64, len(m.coeffs))
	copy(out, m.coeffs)

	return out
}

// Domain returns the domain bounds [min(X), max(X)] observed during fitting.
func (m *Model) Domain() (min, max float64) {
	return m.domainMin, m.domainMax
}

// Window returns the evaluation window bounds.
func (m *Model) Window() (min, max float64) {
	return m.windowMin, m.windowMax
}

// Contains reports whether x lies within the fit domain. Values outside the
// domain are still evaluable but count as extrapolation.
func (m *Model) Contains(x float64) bool {
	return x >= m.domainMin && x <= m.domainMax
}

// Eval evaluates the model at x.
//
// The stored affine mapping takes x into the window, then the polynomial is
// evaluated by Horner's rule. The mapping and polynomial are well-defined
// for any finite x, including values outside the fit domain.
func (m *Model) Eval(x float64) float64 {
	u := m.mapToWindow(x)

	result := m.coeffs[len(m.coeffs)-1]
	for i := len(m.coeffs) - 2; i >= 0; i-- {
		result = result*u + m.coeffs[i]
	}

	return result
}

// mapToWindow applies the affine domain-to-window transform.
func (m *Model) mapToWindow(x float64) float64 {
	return m.windowMin + (x-m.domainMin)*(m.windowMax-m.windowMin)/(m.domainMax-m.domainMin)
}

// String returns a human-readable summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Degree: %d, Domain: [%.4g, %.4g], Coefficients: %v}",
		m.degree, m.domainMin, m.domainMax, m.coeffs)
}

// FitQuality describes how well a model fits a dataset.
//
// It is logically separate from the Model it was computed for, so two models
// fit on the same data can be compared without conflating fit parameters
// with fit quality.
type FitQuality struct {
	// RSquared is the coefficient of determination (≤ 1, higher is better).
	RSquared float64
	// RMSE is the root mean square error in the target column's unit.
	RMSE float64
	// SampleCount is the number of valid rows the computation used.
	SampleCount int
}

// String returns a human-readable summary of the fit quality.
func (q FitQuality) String() string {
	return fmt.Sprintf("FitQuality{R²: %.4f, RMSE: %.4f, Samples: %d}",
		q.RSquared, q.RMSE, q.SampleCount)
}
