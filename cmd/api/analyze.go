package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	conversationFile string
	behavioralFile   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one assessment and print the result",
	Long: `Runs the same pipeline as POST /analyze against two JSON files and
prints the result. Missing files are treated as empty payloads.

Example:
  assessor analyze --conversation conv.json --behavioral hume.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		conv, err := readPayload(conversationFile)
		if err != nil {
			return err
		}
		behav, err := readPayload(behavioralFile)
		if err != nil {
			return err
		}

		res := newService(cfg).Analyze(cmd.Context(), conv, behav)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&conversationFile, "conversation", "", "conversation payload (JSON object)")
	analyzeCmd.Flags().StringVar(&behavioralFile, "behavioral", "", "behavioral payload (JSON object)")
}

func readPayload(path string) (map[string]any, error) {
	out := map[string]any{}
	if path == "" {
		return out, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}
