package calib

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/aerolab/tsfc/errs"
)

// Record is the plain serialized form of a Model.
//
// It carries everything needed to reconstruct the model without access to
// the original fitting data, so calibrations can be persisted and reused
// across process invocations.
type Record struct {
	Degree       int       `json:"degree"`
	Coefficients []float64 `json:"coefficients"`
	DomainMin    float64   `json:"domain_min"`
	DomainMax    float64   `json:"domain_max"`
	WindowMin    float64   `json:"window_min"`
	WindowMax    float64   `json:"window_max"`
}

// Record returns the serialized form of the model.
func (m *Model) Record() Record {
	return Record{
		Degree:       m.degree,
		Coefficients: m.Coefficients(),
		DomainMin:    m.domainMin,
		DomainMax:    m.domainMax,
		WindowMin:    m.windowMin,
		WindowMax:    m.windowMax,
	}
}

// FromRecord reconstructs a Model from its serialized form, validating the
// record before accepting it.
//
// Error conditions:
//   - errs.ErrInvalidDegree: degree outside {1, 2}
//   - errs.ErrInvalidModelRecord: coefficient count not degree+1, non-finite
//     coefficient or bound, collapsed domain or window
func FromRecord(rec Record) (*Model, error) {
	if rec.Degree < 1 || rec.Degree > 2 {
		return nil, fmt.Errorf("%w: %d (supported degrees: 1, 2)", errs.ErrInvalidDegree, rec.Degree)
	}
	if len(rec.Coefficients) != rec.Degree+1 {
		return nil, fmt.Errorf("%w: degree %d expects %d coefficients, got %d",
			errs.ErrInvalidModelRecord, rec.Degree, rec.Degree+1, len(rec.Coefficients))
	}
	for i, c := range rec.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: coefficient %d is not finite", errs.ErrInvalidModelRecord, i)
		}
	}
	for _, b := range []float64{rec.DomainMin, rec.DomainMax, rec.WindowMin, rec.WindowMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, fmt.Errorf("%w: non-finite domain or window bound", errs.ErrInvalidModelRecord)
		}
	}
	if rec.DomainMin >= rec.DomainMax {
		return nil, fmt.Errorf("%w: domain [%g, %g] is collapsed or inverted",
			errs.ErrInvalidModelRecord, rec.DomainMin, rec.DomainMax)
	}
	if rec.WindowMin >= rec.WindowMax {
		return nil, fmt.Errorf("%w: window [%g, %g] is collapsed or inverted",
			errs.ErrInvalidModelRecord, rec.WindowMin, rec.WindowMax)
	}

	coeffs := make([]float64, len(rec.Coefficients))
	copy(coeffs, rec.Coefficients)

	return &Model{
		degree:    rec.Degree,
		coeffs:    coeffs,
		domainMin: rec.DomainMin,
		domainMax: rec.DomainMax,
		windowMin: rec.WindowMin,
		windowMax: rec.WindowMax,
	}, nil
}

// MarshalJSON serializes the model as its Record form.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Record())
}

// UnmarshalModel parses a JSON-encoded Record and reconstructs the model.
func UnmarshalModel(data []byte) (*Model, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidModelRecord, err)
	}

	return FromRecord(rec)
}
