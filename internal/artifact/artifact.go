// Package artifact loads the serialized bundles the training pipeline
// exports: an ordered feature-name list, a fitted standard scaler and a
// fitted tree-ensemble regressor. Bundles are read-only here; this
// process never writes or mutates them.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"npspredict/internal/model"
	"npspredict/internal/scaler"
)

// Artifact base names within a bundle directory. Each resolves to
// <base>.json, .yaml or .yml, JSON preferred.
const (
	FeatureNamesFile = "feature_names"
	ScalerFile       = "scaler"
)

// ErrMissingBundle reports an absent artifact directory. The training
// export has to be run before predictions can be served.
var ErrMissingBundle = errors.New("artifact bundle not found")

// Bundle is one fully deserialized artifact directory.
type Bundle struct {
	FeatureNames []string
	Scaler       *scaler.StandardScaler
	Model        model.Regressor
}

// Load reads the three artifacts from dir. modelName is the model file
// base name ("random_forest" or "gradient_boosting"), no extension.
// Everything is read fresh on every call; nothing is cached, so a
// re-export by the training pipeline takes effect immediately.
func Load(dir, modelName string) (*Bundle, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %s (run the training export first)", ErrMissingBundle, dir)
	}

	var names []string
	if err := loadInto(dir, FeatureNamesFile, &names); err != nil {
		return nil, fmt.Errorf("load feature names: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("load feature names: empty list in %s", dir)
	}

	var sc scaler.StandardScaler
	if err := loadInto(dir, ScalerFile, &sc); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}

	data, ext, err := readArtifact(dir, modelName)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	reg, err := model.Unmarshal(data, decoderFor(ext))
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", modelName, err)
	}

	return &Bundle{FeatureNames: names, Scaler: &sc, Model: reg}, nil
}

// readArtifact resolves base.{json,yaml,yml} under dir, preferring JSON.
func readArtifact(dir, base string) ([]byte, string, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, base+ext)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, ext, nil
		}
		if !os.IsNotExist(err) {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("no %s.{json,yaml,yml} in %s", base, dir)
}

func decoderFor(ext string) func([]byte, any) error {
	if ext == ".yaml" || ext == ".yml" {
		return yaml.Unmarshal
	}
	return json.Unmarshal
}

func loadInto(dir, base string, out any) error {
	data, ext, err := readArtifact(dir, base)
	if err != nil {
		return err
	}
	if err := decoderFor(ext)(data, out); err != nil {
		return fmt.Errorf("parse %s%s: %w", base, ext, err)
	}
	return nil
}
