// Package scaler applies the standard-score transform fitted by the
// training pipeline (per-column mean and scale).
package scaler

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StandardScaler normalizes a feature matrix column-wise:
// (x - mean) / scale. Immutable after loading.
type StandardScaler struct {
	Mean  []float64 `json:"mean" yaml:"mean"`
	Scale []float64 `json:"scale" yaml:"scale"`
}

// Validate checks the loaded parameters are usable.
func (s *StandardScaler) Validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("scaler has no columns")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler mean/scale length mismatch: %d vs %d", len(s.Mean), len(s.Scale))
	}
	for i, v := range s.Scale {
		if v == 0 {
			return fmt.Errorf("scaler column %d has zero scale", i)
		}
	}
	return nil
}

// Transform returns the normalized copy of x. x must have exactly
// len(Mean) columns, in the same order the scaler was fitted on.
func (s *StandardScaler) Transform(x *mat.Dense) (*mat.Dense, error) {
	rows, cols := x.Dims()
	if cols != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d columns, got %d", len(s.Mean), cols)
	}
	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(r, c, (x.At(r, c)-s.Mean[c])/s.Scale[c])
		}
	}
	return out, nil
}
