package artifact_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"npspredict/internal/artifact"
	"npspredict/internal/artifact/artifacttest"
	"npspredict/internal/feature"
	"npspredict/internal/model"
)

func TestLoad_RandomForestBundle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "models")
	artifacttest.WriteRandomForest(t, dir)

	b, err := artifact.Load(dir, "random_forest")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{
		feature.TokenPreDefectCount,
		feature.TokenPreClosedDefectCount,
		feature.TokenPreResolvedDefectCount,
		feature.TokenPreTrialDefectCount,
		feature.TokenPreClosedTrialDefectCount,
		feature.TokenPreResolvedTrialDefectCount,
	}
	if diff := cmp.Diff(want, b.FeatureNames); diff != "" {
		t.Errorf("feature names mismatch:\n%s", diff)
	}
	if _, ok := b.Model.(*model.RandomForest); !ok {
		t.Errorf("model is %T, want *model.RandomForest", b.Model)
	}
	if b.Model.NumTrees() != 2 {
		t.Errorf("NumTrees = %d, want 2", b.Model.NumTrees())
	}
}

func TestLoad_SkynetBundle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "skynet_model")
	artifacttest.WriteSkynet(t, dir)

	b, err := artifact.Load(dir, "gradient_boosting")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := b.Model.(*model.GradientBoosting); !ok {
		t.Errorf("model is %T, want *model.GradientBoosting", b.Model)
	}
}

func TestLoad_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")

	_, err := artifact.Load(dir, "random_forest")
	if !errors.Is(err, artifact.ErrMissingBundle) {
		t.Fatalf("err = %v, want ErrMissingBundle", err)
	}
	if !strings.Contains(err.Error(), dir) {
		t.Errorf("error %q should name the missing directory", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "models")
	artifacttest.WriteRandomForest(t, dir)
	if err := os.Remove(filepath.Join(dir, "scaler.json")); err != nil {
		t.Fatal(err)
	}

	_, err := artifact.Load(dir, "random_forest")
	if err == nil {
		t.Fatal("expected error for missing scaler file")
	}
	if errors.Is(err, artifact.ErrMissingBundle) {
		t.Error("a missing file is a load error, not a missing bundle")
	}
	if !strings.Contains(err.Error(), "load scaler") {
		t.Errorf("error %q should say which artifact failed", err)
	}
}

func TestLoad_CorruptFile_WrapsCause(t *testing.T) {
	for _, file := range []string{"feature_names.json", "scaler.json", "random_forest.json"} {
		t.Run(file, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "models")
			artifacttest.WriteRandomForest(t, dir)
			artifacttest.Corrupt(t, dir, file)

			_, err := artifact.Load(dir, "random_forest")
			if err == nil {
				t.Fatal("expected error for corrupt artifact")
			}
			// The underlying decode error must surface in the chain.
			if !strings.Contains(err.Error(), "invalid") && !strings.Contains(err.Error(), "parse") {
				t.Errorf("error %q should include the decode cause", err)
			}
		})
	}
}

func TestLoad_YAMLVariant(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "models")
	artifacttest.WriteRandomForest(t, dir)

	// Replace the scaler with a YAML rendition; the loader detects the
	// format from the extension.
	if err := os.Remove(filepath.Join(dir, "scaler.json")); err != nil {
		t.Fatal(err)
	}
	yamlScaler := "mean: [0, 0, 0, 0, 0, 0]\nscale: [1, 1, 1, 1, 1, 1]\n"
	if err := os.WriteFile(filepath.Join(dir, "scaler.yaml"), []byte(yamlScaler), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := artifact.Load(dir, "random_forest")
	if err != nil {
		t.Fatalf("Load with YAML scaler: %v", err)
	}
	if len(b.Scaler.Mean) != 6 {
		t.Errorf("scaler has %d columns, want 6", len(b.Scaler.Mean))
	}
}

func TestLoad_InvalidScalerParams(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "models")
	artifacttest.WriteRandomForest(t, dir)
	zeroScale := `{"mean":[0,0,0,0,0,0],"scale":[1,1,1,0,1,1]}`
	if err := os.WriteFile(filepath.Join(dir, "scaler.json"), []byte(zeroScale), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := artifact.Load(dir, "random_forest")
	if err == nil || !strings.Contains(err.Error(), "zero scale") {
		t.Errorf("err = %v, want zero-scale rejection", err)
	}
}
