package calib

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerolab/tsfc/errs"
)

func TestModelRecordRoundTrip(t *testing.T) {
	tbl := pairTable(t, scenarioTakeoff, scenarioCruise)
	original, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 2)
	require.NoError(t, err)

	restored, err := FromRecord(original.Record())
	require.NoError(t, err)

	// Inside the domain, at its edges, and well outside it.
	for _, x := range []float64{7.72, 10.0, 12.5, 18.37, 2.0, 25.0} {
		require.Equal(t, original.Eval(x), restored.Eval(x), "x=%g", x)
	}
	require.Equal(t, original.Coefficients(), restored.Coefficients())
}

func TestModelJSONRoundTrip(t *testing.T) {
	tbl := pairTable(t, scenarioTakeoff, scenarioCruise)
	original, err := Fit(tbl, "TSFC (takeoff)", "TSFC (cruise)", 1)
	require.NoError(t, err)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	require.Contains(t, string(data), `"degree":1`)
	require.Contains(t, string(data), `"domain_min"`)

	restored, err := UnmarshalModel(data)
	require.NoError(t, err)
	for _, x := range []float64{7.72, 13.0, 20.0} {
		require.InDelta(t, original.Eval(x), restored.Eval(x), 1e-12)
	}
}

func TestFromRecordValidation(t *testing.T) {
	valid := Record{
		Degree:       1,
		Coefficients: []float64{21.0, 2.0},
		DomainMin:    7.72, DomainMax: 18.37,
		WindowMin: -1, WindowMax: 1,
	}

	tests := []struct {
		name    string
		mutate  func(*Record)
		wantErr error
	}{
		{"degree zero", func(r *Record) { r.Degree = 0 }, errs.ErrInvalidDegree},
		{"degree three", func(r *Record) { r.Degree = 3 }, errs.ErrInvalidDegree},
		{"coefficient count", func(r *Record) { r.Coefficients = []float64{1} }, errs.ErrInvalidModelRecord},
		{"collapsed domain", func(r *Record) { r.DomainMax = r.DomainMin }, errs.ErrInvalidModelRecord},
		{"inverted domain", func(r *Record) { r.DomainMin, r.DomainMax = r.DomainMax, r.DomainMin }, errs.ErrInvalidModelRecord},
		{"collapsed window", func(r *Record) { r.WindowMax = r.WindowMin }, errs.ErrInvalidModelRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid
			rec.Coefficients = append([]float64(nil), valid.Coefficients...)
			tt.mutate(&rec)

			_, err := FromRecord(rec)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("valid record accepted", func(t *testing.T) {
		m, err := FromRecord(valid)
		require.NoError(t, err)
		require.Equal(t, 1, m.Degree())
	})
}

func TestUnmarshalModelMalformedJSON(t *testing.T) {
	_, err := UnmarshalModel([]byte(`{"degree": "one"}`))
	require.ErrorIs(t, err, errs.ErrInvalidModelRecord)
}

func TestFromRecordIsolatesCoefficients(t *testing.T) {
	rec := Record{
		Degree:       1,
		Coefficients: []float64{21.0, 2.0},
		DomainMin:    7.72, DomainMax: 18.37,
		WindowMin: -1, WindowMax: 1,
	}
	m, err := FromRecord(rec)
	require.NoError(t, err)

	rec.Coefficients[0] = 999
	require.Equal(t, 21.0, m.Coefficients()[0], "model must not share the record's slice")
}
