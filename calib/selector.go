package calib

// DefaultSelectionThreshold is the minimum R² improvement the higher-degree
// model must show over the simpler one to be selected.
const DefaultSelectionThreshold = 0.01

// SelectModel chooses between two candidate models fit on the same data.
//
// The default policy prefers the higher-degree model unless its R²
// improvement over the simpler model falls below the threshold, in which
// case the simpler model wins (parsimony tie-break). A negative threshold
// is treated as zero. When both models have the same degree, the one with
// the higher R² is returned; an exact tie goes to a.
//
// SelectModel is a pure function of the two quality values and never fails;
// it is independent of how the models were fit or evaluated.
func SelectModel(a *Model, qa FitQuality, b *Model, qb FitQuality, threshold float64) *Model {
	if threshold < 0 {
		threshold = 0
	}

	if a.Degree() == b.Degree() {
		if qb.RSquared > qa.RSquared {
			return b
		}

		return a
	}

	lo, hi := a, b
	loQ, hiQ := qa, qb
	if a.Degree() > b.Degree() {
		lo, hi = b, a
		loQ, hiQ = qb, qa
	}

	if hiQ.RSquared-loQ.RSquared < threshold {
		return lo
	}

	return hi
}
