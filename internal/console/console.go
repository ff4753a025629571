// Package console implements the interactive prediction session for the
// random forest flavor: six line-based prompts, one prediction, the
// result or an error printed as text.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"npspredict/internal/feature"
)

// Scorer is the prediction dependency; predict.Predictor satisfies it.
type Scorer interface {
	Predict(feature.Input) (float64, error)
}

// prompts in ask order. Slots line up with the fields of feature.Input.
var prompts = []string{
	"Pre-release defect count",
	"Pre-release closed defect count",
	"Pre-release resolved defect count",
	"Pre-release trial defect count",
	"Pre-release closed trial defect count",
	"Pre-release resolved trial defect count",
}

const rule = "=================================================="

// Run drives one session. It never returns an error: every failure is
// reported as text on out, and the caller exits zero either way. A
// value that does not parse as a number aborts the whole session; there
// is no per-field retry.
func Run(in io.Reader, out io.Writer, s Scorer) {
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "NPS prediction (random forest)")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Enter the defect metrics:")

	reader := bufio.NewReader(in)
	vals := make([]float64, len(prompts))
	for i, label := range prompts {
		fmt.Fprintf(out, "%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "no input, aborting")
			return
		}
		v, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if perr != nil {
			fmt.Fprintln(out, "please enter a valid number")
			return
		}
		vals[i] = v
	}

	result, err := s.Predict(feature.Input{
		PreDefectCount:              vals[0],
		PreClosedDefectCount:        vals[1],
		PreResolvedDefectCount:      vals[2],
		PreTrialDefectCount:         vals[3],
		PreClosedTrialDefectCount:   vals[4],
		PreResolvedTrialDefectCount: vals[5],
	})
	if err != nil {
		fmt.Fprintf(out, "prediction failed: %v\n", err)
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Predicted NPS (random forest): %.2f\n", result)
	fmt.Fprintln(out, rule)
}
