package model

import "fmt"

// ensembleFile is the on-disk model document. One flat schema covers
// both kinds; base_score and learning_rate are only meaningful for
// gradient boosting.
type ensembleFile struct {
	Kind         string  `json:"kind" yaml:"kind"`
	BaseScore    float64 `json:"base_score" yaml:"base_score"`
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`
	Trees        []Tree  `json:"trees" yaml:"trees"`
}

// Unmarshal parses a serialized ensemble with the given decoder
// (json.Unmarshal or yaml.Unmarshal, chosen by the caller from the
// file extension) and returns the concrete regressor.
func Unmarshal(data []byte, decode func([]byte, any) error) (Regressor, error) {
	var f ensembleFile
	if err := decode(data, &f); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("model %q has no trees", f.Kind)
	}
	switch f.Kind {
	case KindRandomForest:
		return &RandomForest{Trees: f.Trees}, nil
	case KindGradientBoosting:
		if f.LearningRate <= 0 {
			return nil, fmt.Errorf("gradient boosting model has learning_rate %v, want > 0", f.LearningRate)
		}
		return &GradientBoosting{
			BaseScore:    f.BaseScore,
			LearningRate: f.LearningRate,
			Trees:        f.Trees,
		}, nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", f.Kind)
	}
}
