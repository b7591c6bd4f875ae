// Package calib implements the TSFC calibration-and-scaling engine.
//
// Engines certified with both takeoff and cruise TSFC measurements are used
// to calibrate a polynomial relationship between the two; the calibrated
// model is then applied to the full engine database, where most engines
// report only takeoff measurements, to estimate cruise TSFC.
//
// # Fitting
//
// Fit performs a least-squares polynomial fit (degree 1 or 2) of a dependent
// column against an independent column of a table. The independent values
// are affinely mapped from their domain [min(X), max(X)] into the fixed
// window [-1, 1] before solving; fitting physical-unit ranges directly is
// numerically ill-conditioned for higher degrees. The resulting Model stores
// the coefficients together with the domain and window bounds, so later
// evaluation reproduces the exact same mapping.
//
// # Evaluation and selection
//
// Evaluate computes the coefficient of determination (R²) and RMSE of a
// model against a table, which may be the fitting table or held-out data.
// SelectModel compares a linear and a quadratic candidate fit on the same
// data and keeps the quadratic only when its R² improvement clears a
// threshold (parsimony tie-break). Calibrate bundles the whole sequence.
//
// # Scaling
//
// Apply maps a model over every row of a target table, producing a derived
// table with a predicted column and an extrapolation flag for rows outside
// the fit domain. Inputs are treated as immutable snapshots throughout;
// every operation returns newly allocated outputs and is safe to run
// concurrently over independent inputs.
//
// # Basic usage
//
//	result, err := calib.Calibrate(calibrationTable, "TSFC (takeoff)", "TSFC (cruise)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scored, err := calib.Apply(result.Selected, databaseTable, "TSFC (takeoff)")
package calib
