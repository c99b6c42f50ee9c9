package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const redacted = "********"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Inspect the configuration shared by the api server and this tool.

Configuration hierarchy (highest to lowest priority):
1. Environment variables (FAKENEWS_*, PORT)
2. Config file (./config.yaml, ./configs/config.yaml or --config)
3. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.Redis.Password != "" {
			cfg.Redis.Password = redacted
		}
		if cfg.Database.Password != "" {
			cfg.Database.Password = redacted
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
