// Package cli implements the fakenews command line tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/config"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

var (
	cfgFile   string
	modelPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fakenews",
	Short: "Fake news detection with a TF-IDF + linear SVM model",
	Long: `fakenews classifies news text as real or fake with a trained
TF-IDF + LinearSVC pipeline.

The same model artifact is served over HTTP by the api binary.
This tool runs predictions locally and manages model artifacts.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fakenews %s\n", Version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or ./configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "model artifact path (overrides model.path)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads configuration honouring --config
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveModelPath returns --model when set, else the configured model path
func resolveModelPath() (string, error) {
	if modelPath != "" {
		return modelPath, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Model.Path, nil
}
