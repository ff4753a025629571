// Package model runs inference for the serialized tree-ensemble
// regressors exported by the training pipeline: a random forest and a
// gradient boosting ("skynet") model. Only inference lives here;
// training happens in the external pipeline that writes the artifacts.
package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ensemble kinds as written by the training export.
const (
	KindRandomForest     = "random_forest"
	KindGradientBoosting = "gradient_boosting"
)

// Regressor maps a scaled feature matrix to one prediction per row.
type Regressor interface {
	Predict(x *mat.Dense) ([]float64, error)
	NumTrees() int
}

// Node is one split or leaf of a flattened regression tree. Leaves are
// marked by Left == -1. Feature indexes a column of the scaled row.
type Node struct {
	Feature   int     `json:"feature" yaml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Left      int     `json:"left" yaml:"left"`
	Right     int     `json:"right" yaml:"right"`
	Value     float64 `json:"value" yaml:"value"`
}

// Tree is a regression tree stored as a flat node array rooted at
// index 0. Split rule: x[Feature] <= Threshold descends Left.
type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Predict walks the tree for a single feature row.
func (t *Tree) Predict(row []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, fmt.Errorf("tree has no nodes")
	}
	i := 0
	// A well-formed tree reaches a leaf in at most len(Nodes) hops;
	// anything longer means the node array contains a cycle.
	for hops := 0; hops <= len(t.Nodes); hops++ {
		n := t.Nodes[i]
		if n.Left < 0 {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(row) {
			return 0, fmt.Errorf("node %d: feature index %d out of range for row of %d", i, n.Feature, len(row))
		}
		next := n.Right
		if row[n.Feature] <= n.Threshold {
			next = n.Left
		}
		if next < 0 || next >= len(t.Nodes) {
			return 0, fmt.Errorf("node %d: child index %d out of range", i, next)
		}
		i = next
	}
	return 0, fmt.Errorf("tree walk exceeded %d hops without reaching a leaf", len(t.Nodes))
}

// RandomForest predicts the mean of its trees.
type RandomForest struct {
	Trees []Tree
}

func (f *RandomForest) NumTrees() int { return len(f.Trees) }

func (f *RandomForest) Predict(x *mat.Dense) ([]float64, error) {
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("random forest has no trees")
	}
	rows, _ := x.Dims()
	out := make([]float64, rows)
	for r := 0; r < rows; r++ {
		row := mat.Row(nil, r, x)
		var sum float64
		for ti := range f.Trees {
			v, err := f.Trees[ti].Predict(row)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", ti, err)
			}
			sum += v
		}
		out[r] = sum / float64(len(f.Trees))
	}
	return out, nil
}

// GradientBoosting predicts BaseScore plus the shrinkage-weighted sum
// of its trees.
type GradientBoosting struct {
	BaseScore    float64
	LearningRate float64
	Trees        []Tree
}

func (g *GradientBoosting) NumTrees() int { return len(g.Trees) }

func (g *GradientBoosting) Predict(x *mat.Dense) ([]float64, error) {
	if len(g.Trees) == 0 {
		return nil, fmt.Errorf("gradient boosting model has no trees")
	}
	rows, _ := x.Dims()
	out := make([]float64, rows)
	for r := 0; r < rows; r++ {
		row := mat.Row(nil, r, x)
		sum := g.BaseScore
		for ti := range g.Trees {
			v, err := g.Trees[ti].Predict(row)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", ti, err)
			}
			sum += g.LearningRate * v
		}
		out[r] = sum
	}
	return out, nil
}
