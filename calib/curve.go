package calib

// curveMargin extends curve sampling past the fit domain on both sides, in
// the unit of the independent column (g/(kN·s) for TSFC calibrations), so a
// plotted fit line visibly covers the scattered data.
const curveMargin = 5.0

// Curve samples the fitted curve at n evenly spaced points over
// [domain_min − margin, domain_max + margin].
//
// It exists for plotting and reporting collaborators, which consume the
// (x, y) pairs directly; the core does no plotting itself. n values below 2
// are raised to 2.
func Curve(m *Model, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}

	start := m.domainMin - curveMargin
	stop := m.domainMax + curveMargin
	step := (stop - start) / float64(n-1)

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x := start + float64(i)*step
		xs[i] = x
		ys[i] = m.Eval(x)
	}

	return xs, ys
}
