package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/modelstore"
)

var (
	importFrom string
	importName string
	importDir  string
)

// modelCmd represents the model command
var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Inspect and manage model artifacts",
}

var modelInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the hyperparameters of a model artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveModelPath()
		if err != nil {
			return err
		}

		model, err := modelstore.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load model: %w", err)
		}

		data, err := yaml.Marshal(model.Info())
		if err != nil {
			return fmt.Errorf("error marshaling model info: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Model: %s\n\n", path)
		_, err = out.Write(data)
		return err
	},
}

var modelImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate an exported pipeline and store it as a model artifact",
	Long: `Import reads a pipeline exported as JSON (optionally .gz), checks that
its vectorizer and classifier fit together, and writes it to the models
directory under --name. A --name ending in .gz is stored compressed.

Example:
  fakenews model import --from export/pipeline.json --name fake_news_model.json.gz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := modelstore.Load(importFrom)
		if err != nil {
			return fmt.Errorf("failed to read pipeline: %w", err)
		}

		path, err := modelstore.SaveTo(importDir, model, importName)
		if err != nil {
			return fmt.Errorf("failed to save model: %w", err)
		}

		info := model.Info()
		fmt.Fprintf(cmd.OutOrStdout(), "Saved model to %s (%d features, classes %v)\n",
			path, info.VocabularySize, info.Classes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelCmd)
	modelCmd.AddCommand(modelInspectCmd)
	modelCmd.AddCommand(modelImportCmd)

	modelImportCmd.Flags().StringVar(&importFrom, "from", "", "exported pipeline file")
	modelImportCmd.Flags().StringVar(&importName, "name", modelstore.DefaultName, "artifact file name")
	modelImportCmd.Flags().StringVar(&importDir, "dir", modelstore.DefaultDir, "models directory")
	_ = modelImportCmd.MarkFlagRequired("from")
}
