package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/behavior-assessor/internal/config"
	"github.com/bryanwahyu/behavior-assessor/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "assessor",
	Short: "Behavioral assessment service",
	Long: `Runs multi-modal behavioral assessments over a conversation payload
and a behavioral (voice and face) payload.

Without a subcommand the HTTP API is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", path, "path to config.yaml")

	rootCmd.AddCommand(serveCmd, analyzeCmd, fallbackCmd, schemaCmd)
}

// loadConfig reads the configuration and initializes the shared logger on the
// command's stderr, keeping stdout for results.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File, cmd.ErrOrStderr()); err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
