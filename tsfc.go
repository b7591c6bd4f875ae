// Package tsfc calibrates the relationship between turbofan take-off and
// cruise thrust-specific fuel consumption (TSFC) and applies the calibrated
// model to scale an engine database.
//
// Public engine databases list take-off TSFC for nearly every engine, while
// cruise TSFC — the figure that drives fuel-burn estimates — is only known
// for a small calibration fleet. This package fits a polynomial mapping from
// take-off to cruise TSFC on the calibration fleet and uses it to estimate
// cruise TSFC for the rest of the database.
//
// # Core Features
//
//   - Typed, validity-aware in-memory tables (see the table package)
//   - Least-squares polynomial fitting on a normalized window (degree 1 or 2)
//   - R² evaluation and threshold-based model selection
//   - Extrapolation flagging when scaling outside the calibrated domain
//   - JSON model records and compact binary snapshots (see the snapshot package)
//
// # Basic Usage
//
// Calibrating on a reference fleet and scaling a database:
//
//	import "github.com/aerolab/tsfc"
//
//	// Calibration fleet with both TSFC figures known.
//	fleet, _ := table.New(
//	    table.NewNumericColumn("TSFC (takeoff)", takeoff),
//	    table.NewNumericColumn("TSFC (cruise)", cruise),
//	)
//
//	// Fit linear and quadratic models, keep the better one.
//	result, _ := tsfc.Calibrate(fleet, "TSFC (takeoff)", "TSFC (cruise)")
//	fmt.Printf("selected degree %d, R²=%.4f\n",
//	    result.Selected.Degree(), result.SelectedQuality().RSquared)
//
//	// Scale the full database; rows outside the calibrated take-off
//	// range are scored but flagged as extrapolated.
//	scaled, _ := tsfc.Apply(result.Selected, database, "TSFC (takeoff)")
//
// Databases that report fuel flow instead of take-off TSFC are derived first:
//
//	withTSFC, _ := tsfc.DeriveTakeoffTSFC(database,
//	    "Fuel Flow T/O (kg/sec)", "Rated Thrust (kN)", "TSFC (takeoff)")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the calib
// package, simplifying the most common use cases. For fine-grained control
// over fitting, selection and serialization, use the calib, table and
// snapshot packages directly.
package tsfc

import (
	"fmt"
	"math"

	"github.com/aerolab/tsfc/calib"
	"github.com/aerolab/tsfc/errs"
	"github.com/aerolab/tsfc/table"
)

// DeriveTakeoffTSFC computes take-off TSFC from fuel flow and rated thrust
// and returns a new table with the result appended as outCol.
//
// TSFC is fuel flow divided by thrust, scaled from kg/(kN·s) to g/(kN·s).
// A row's output cell is invalid when either input cell is invalid, the
// thrust is zero, or the quotient is not finite. The source table is not
// modified.
//
// Parameters:
//   - tbl: The source table
//   - fuelFlowCol: Numeric column holding take-off fuel flow in kg/s
//   - thrustCol: Numeric column holding rated thrust in kN
//   - outCol: Name for the derived take-off TSFC column in g/(kN·s)
//
// Returns an error if either input column is missing or non-numeric, or if
// outCol already exists.
func DeriveTakeoffTSFC(tbl *table.Table, fuelFlowCol, thrustCol, outCol string) (*table.Table, error) {
	fuel, err := tbl.Numeric(fuelFlowCol)
	if err != nil {
		return nil, err
	}
	thrust, err := tbl.Numeric(thrustCol)
	if err != nil {
		return nil, err
	}
	if tbl.HasColumn(outCol) {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnExists, outCol)
	}

	rows := tbl.NumRows()
	values := make([]float64, rows)
	valid := make([]bool, rows)
	for i := 0; i < rows; i++ {
		ff, okF := fuel.NumericAt(i)
		th, okT := thrust.NumericAt(i)
		if !okF || !okT || th == 0 {
			continue
		}
		v := ff / th * 1000.0
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values[i] = v
		valid[i] = true
	}

	return tbl.WithColumn(table.NewNumericColumnWithValidity(outCol, values, valid))
}

// Fit fits a polynomial of the given degree mapping xCol to yCol.
// It is a thin wrapper around calib.Fit.
func Fit(tbl *table.Table, xCol, yCol string, degree int) (*calib.Model, error) {
	return calib.Fit(tbl, xCol, yCol, degree)
}

// Evaluate measures how well a model reproduces yCol from xCol.
// It is a thin wrapper around calib.Evaluate.
func Evaluate(m *calib.Model, tbl *table.Table, xCol, yCol string) (calib.FitQuality, error) {
	return calib.Evaluate(m, tbl, xCol, yCol)
}

// Apply scores every row of tbl with the model and appends the predictions
// and extrapolation flags as new columns. It is a thin wrapper around
// calib.Apply; see calib.ApplyOption for column naming and flag control.
func Apply(m *calib.Model, tbl *table.Table, xCol string, opts ...calib.ApplyOption) (*table.Table, error) {
	return calib.Apply(m, tbl, xCol, opts...)
}

// SelectModel picks between two fitted models using the R² improvement
// threshold rule. It is a thin wrapper around calib.SelectModel.
func SelectModel(a *calib.Model, qa calib.FitQuality, b *calib.Model, qb calib.FitQuality, threshold float64) *calib.Model {
	return calib.SelectModel(a, qa, b, qb, threshold)
}

// Calibrate fits linear and quadratic models on the calibration table,
// evaluates both, and selects one. It is a thin wrapper around
// calib.Calibrate with the default selection threshold; use
// calib.WithSelectionThreshold to override it.
func Calibrate(tbl *table.Table, xCol, yCol string, opts ...calib.CalibrateOption) (*calib.Result, error) {
	return calib.Calibrate(tbl, xCol, yCol, opts...)
}
