package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/classifier"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/usecase"
)

// sampleTexts are classified when predict is run without arguments
var sampleTexts = []string{
	"Authorities in Nigeria are increasing efforts to tackle investment scams, especially those involving crypto platforms.",
	"NASA secretly admitted that the Moon landing was faked and astronauts never left Earth.",
	"The government successfully passed a new education reform bill today, aiming to improve access to schools.",
}

var predictJSON bool

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict [text...]",
	Short: "Classify texts with the local model",
	Long: `Predict loads the model artifact once and classifies each argument.
Without arguments a few built-in sample texts are classified.

Example:
  fakenews predict "Scientists discover breakthrough in renewable energy."
  fakenews predict --model models/fake_news_model.json.gz --json "some text"`,
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "print results as JSON")
}

func runPredict(cmd *cobra.Command, args []string) error {
	path, err := resolveModelPath()
	if err != nil {
		return err
	}

	local, err := classifier.NewLocalClassifier(path)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}
	uc := usecase.NewPredictionUsecase(local, nil, nil, nil)

	texts := args
	if len(texts) == 0 {
		texts = sampleTexts
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]*usecase.PredictionOutput, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			return fmt.Errorf("text cannot be empty")
		}
		output, err := uc.Predict(ctx, text)
		if err != nil {
			return err
		}
		results = append(results, output)
	}

	out := cmd.OutOrStdout()
	if predictJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	printPredictions(out, results)
	return nil
}

func printPredictions(out io.Writer, results []*usecase.PredictionOutput) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "FAKE NEWS DETECTION PREDICTIONS")
	fmt.Fprintln(out, rule)

	for i, r := range results {
		label := "FAKE"
		if r.IsReal {
			label = "REAL"
		}
		fmt.Fprintf(out, "\n%d. %s\n", i+1, label)
		fmt.Fprintf(out, "   Text: %s\n", r.TextPreview)
		if r.Confidence != nil {
			fmt.Fprintf(out, "   Confidence: %.4f\n", *r.Confidence)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
}
