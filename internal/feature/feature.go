// Package feature defines the six defect-tracking inputs a prediction
// request carries and assembles them into a model-ready row.
package feature

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Input holds the six pre-release defect counts. Counts are
// non-negative by domain meaning; no range validation is applied, the
// models simply see what the caller sent.
type Input struct {
	PreDefectCount              float64
	PreClosedDefectCount        float64
	PreResolvedDefectCount      float64
	PreTrialDefectCount         float64
	PreClosedTrialDefectCount   float64
	PreResolvedTrialDefectCount float64
}

// Artifact tokens. These exact strings are what the training pipeline
// writes into the feature_names artifact; they are a wire format shared
// with the exporter and must never be renamed here.
const (
	TokenPreDefectCount              = "上市前缺陷数"
	TokenPreClosedDefectCount        = "上市前已关闭缺陷数"
	TokenPreResolvedDefectCount      = "上市前已解决缺陷数"
	TokenPreTrialDefectCount         = "上市前试用缺陷数"
	TokenPreClosedTrialDefectCount   = "上市前已关闭试用缺陷数"
	TokenPreResolvedTrialDefectCount = "上市前已解决试用缺陷数"
)

// ErrUnknownFeature reports a name in the loaded feature-name list that
// none of the six inputs maps to. The artifact and this binary are out
// of sync; failing beats serving a silent zero column.
var ErrUnknownFeature = errors.New("unknown feature name")

func (in Input) byToken() map[string]float64 {
	return map[string]float64{
		TokenPreDefectCount:              in.PreDefectCount,
		TokenPreClosedDefectCount:        in.PreClosedDefectCount,
		TokenPreResolvedDefectCount:      in.PreResolvedDefectCount,
		TokenPreTrialDefectCount:         in.PreTrialDefectCount,
		TokenPreClosedTrialDefectCount:   in.PreClosedTrialDefectCount,
		TokenPreResolvedTrialDefectCount: in.PreResolvedTrialDefectCount,
	}
}

// Assemble builds the single-row matrix whose column order follows
// names exactly, pulling values from in by token.
func Assemble(in Input, names []string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty feature name list")
	}
	vals := in.byToken()
	row := make([]float64, len(names))
	for i, name := range names {
		v, ok := vals[name]
		if !ok {
			return nil, fmt.Errorf("assemble row: %w: %q", ErrUnknownFeature, name)
		}
		row[i] = v
	}
	return mat.NewDense(1, len(names), row), nil
}
