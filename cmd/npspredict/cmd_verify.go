package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"npspredict/internal/artifact"
	"npspredict/internal/predict"
)

var (
	verifyModelsDir string
	verifySkynetDir string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that both artifact bundles load cleanly",
	Long: `Loads the random forest and skynet artifact bundles and reports, per
flavor, whether the three artifacts (feature names, scaler, model)
deserialize. Read-only; nothing is cached or modified.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyModelsDir, "models", "", "override the random forest artifact directory")
	verifyCmd.Flags().StringVar(&verifySkynetDir, "skynet", "", "override the skynet artifact directory")
}

func runVerify(cmd *cobra.Command, _ []string) error {
	flavors := []predict.Predictor{
		predict.RandomForest.WithDir(verifyModelsDir),
		predict.Skynet.WithDir(verifySkynetDir),
	}

	bundles := make([]*artifact.Bundle, len(flavors))
	errs := make([]error, len(flavors))

	// The two bundles are independent; check them concurrently. Errors
	// are collected per flavor, never short-circuited.
	g, _ := errgroup.WithContext(cmd.Context())
	for i, f := range flavors {
		g.Go(func() error {
			bundles[i], errs[i] = artifact.Load(f.Dir, f.ModelFile)
			return nil
		})
	}
	_ = g.Wait()

	out := cmd.OutOrStdout()
	failed := 0
	for i, f := range flavors {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(out, "%-14s ERROR  %v\n", f.Name, errs[i])
			continue
		}
		b := bundles[i]
		fmt.Fprintf(out, "%-14s OK     features=%d trees=%d\n", f.Name, len(b.FeatureNames), b.Model.NumTrees())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d bundles failed verification", failed, len(flavors))
	}
	return nil
}
