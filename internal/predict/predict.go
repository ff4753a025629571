// Package predict wires artifact loading, feature assembly, scaling and
// ensemble inference into the two predictor flavors.
package predict

import (
	"fmt"

	"npspredict/internal/artifact"
	"npspredict/internal/feature"
)

// Predictor is one model flavor, parameterized by its artifact
// directory and model file base name. The zero value is not usable;
// start from RandomForest or Skynet.
type Predictor struct {
	Name      string // flavor name for logs and the verify report
	Dir       string // artifact bundle directory
	ModelFile string // model artifact base name, no extension
}

// The two shipped flavors. Directories are relative to the process
// working directory, matching where the training export writes them.
var (
	RandomForest = Predictor{Name: "random_forest", Dir: "models", ModelFile: "random_forest"}
	Skynet       = Predictor{Name: "skynet", Dir: "skynet_model", ModelFile: "gradient_boosting"}
)

// WithDir returns a copy pointing at dir. An empty dir keeps the
// default, so flag values can be passed through unconditionally.
func (p Predictor) WithDir(dir string) Predictor {
	if dir != "" {
		p.Dir = dir
	}
	return p
}

// Predict runs one end-to-end prediction: load the bundle, assemble the
// row in artifact order, scale, score. Artifacts are re-read from disk
// on every call so a fresh training export takes effect without a
// restart. The two flavors share no state; a broken bundle on one side
// never affects the other.
func (p Predictor) Predict(in feature.Input) (float64, error) {
	bundle, err := artifact.Load(p.Dir, p.ModelFile)
	if err != nil {
		return 0, err
	}

	row, err := feature.Assemble(in, bundle.FeatureNames)
	if err != nil {
		return 0, err
	}

	scaled, err := bundle.Scaler.Transform(row)
	if err != nil {
		return 0, fmt.Errorf("scale features: %w", err)
	}

	preds, err := bundle.Model.Predict(scaled)
	if err != nil {
		return 0, fmt.Errorf("score features: %w", err)
	}
	return preds[0], nil
}
