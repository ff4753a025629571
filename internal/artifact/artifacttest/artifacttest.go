// Package artifacttest writes known-good artifact bundles for tests.
package artifacttest

import (
	"os"
	"path/filepath"
	"testing"

	"npspredict/internal/feature"
)

// featureNamesJSON lists the six tokens in training order.
const featureNamesJSON = `["` + feature.TokenPreDefectCount + `","` +
	feature.TokenPreClosedDefectCount + `","` +
	feature.TokenPreResolvedDefectCount + `","` +
	feature.TokenPreTrialDefectCount + `","` +
	feature.TokenPreClosedTrialDefectCount + `","` +
	feature.TokenPreResolvedTrialDefectCount + `"]`

// identityScalerJSON is a no-op transform (mean 0, scale 1).
const identityScalerJSON = `{"mean":[0,0,0,0,0,0],"scale":[1,1,1,1,1,1]}`

// randomForestJSON averages a stump on column 0 (10 below 0.5, 20
// above) with a constant 30 leaf: prediction is 20 for
// preDefectCount <= 0.5, 25 above.
const randomForestJSON = `{
  "kind": "random_forest",
  "trees": [
    {"nodes": [
      {"feature": 0, "threshold": 0.5, "left": 1, "right": 2},
      {"feature": -1, "threshold": 0, "left": -1, "right": -1, "value": 10},
      {"feature": -1, "threshold": 0, "left": -1, "right": -1, "value": 20}
    ]},
    {"nodes": [{"feature": -1, "threshold": 0, "left": -1, "right": -1, "value": 30}]}
  ]
}`

// gradientBoostingJSON scores base 5 + 0.1*(10 + stump): 6 for
// preDefectCount <= 0.5, 11 above.
const gradientBoostingJSON = `{
  "kind": "gradient_boosting",
  "base_score": 5,
  "learning_rate": 0.1,
  "trees": [
    {"nodes": [{"feature": -1, "threshold": 0, "left": -1, "right": -1, "value": 10}]},
    {"nodes": [
      {"feature": 0, "threshold": 0.5, "left": 1, "right": 2},
      {"feature": -1, "threshold": 0, "left": -1, "right": -1, "value": 0},
      {"feature": -1, "threshold": 0, "left": -1, "right": -1, "value": 50}
    ]}
  ]
}`

// WriteRandomForest writes a complete random forest bundle into dir.
func WriteRandomForest(t *testing.T, dir string) {
	t.Helper()
	writeCommon(t, dir)
	writeFile(t, dir, "random_forest.json", randomForestJSON)
}

// WriteSkynet writes a complete gradient boosting bundle into dir.
func WriteSkynet(t *testing.T, dir string) {
	t.Helper()
	writeCommon(t, dir)
	writeFile(t, dir, "gradient_boosting.json", gradientBoostingJSON)
}

// Corrupt overwrites one artifact file in dir with unparseable bytes.
func Corrupt(t *testing.T, dir, filename string) {
	t.Helper()
	writeFile(t, dir, filename, "{{{ not a document")
}

func writeCommon(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	writeFile(t, dir, "feature_names.json", featureNamesJSON)
	writeFile(t, dir, "scaler.json", identityScalerJSON)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
