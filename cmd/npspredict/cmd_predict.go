package main

import (
	"github.com/spf13/cobra"

	"npspredict/internal/console"
	"npspredict/internal/predict"
)

var predictModelsDir string

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Interactively predict an NPS score with the random forest model",
	Long: `Prompts for the six pre-release defect metrics on the console, runs the
random forest predictor and prints the predicted NPS score.

Errors (missing artifacts, bad input) are printed as text; the command
always exits zero.`,
	Run: func(cmd *cobra.Command, _ []string) {
		p := predict.RandomForest.WithDir(predictModelsDir)
		console.Run(cmd.InOrStdin(), cmd.OutOrStdout(), p)
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictModelsDir, "models", "", "override the random forest artifact directory")
}
