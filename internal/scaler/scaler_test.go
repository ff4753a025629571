package scaler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"
)

func TestTransform(t *testing.T) {
	s := &StandardScaler{
		Mean:  []float64{10, 0},
		Scale: []float64{2, 4},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	out, err := s.Transform(mat.NewDense(2, 2, []float64{
		12, 8,
		10, -4,
	}))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	want := []float64{
		1, 2, // (12-10)/2, (8-0)/4
		0, -1, // (10-10)/2, (-4-0)/4
	}
	got := make([]float64, 0, 4)
	for r := 0; r < 2; r++ {
		got = append(got, mat.Row(nil, r, out)...)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transform mismatch:\n%s", diff)
	}
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	s := &StandardScaler{Mean: []float64{5}, Scale: []float64{2}}
	x := mat.NewDense(1, 1, []float64{9})
	if _, err := s.Transform(x); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if x.At(0, 0) != 9 {
		t.Errorf("input mutated: got %v, want 9", x.At(0, 0))
	}
}

func TestTransform_ColumnMismatch(t *testing.T) {
	s := &StandardScaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}}
	if _, err := s.Transform(mat.NewDense(1, 3, []float64{1, 2, 3})); err == nil {
		t.Error("expected error for column count mismatch")
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]*StandardScaler{
		"empty":           {},
		"length mismatch": {Mean: []float64{1, 2}, Scale: []float64{1}},
		"zero scale":      {Mean: []float64{1}, Scale: []float64{0}},
	}
	for name, s := range cases {
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected Validate error", name)
		}
	}
}
