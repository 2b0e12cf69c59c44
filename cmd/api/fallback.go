package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/behavior-assessor/internal/application/fallback"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
)

var fallbackVariant string

var fallbackCmd = &cobra.Command{
	Use:   "fallback",
	Short: "Print a fallback assessment without calling a model",
	RunE: func(cmd *cobra.Command, _ []string) error {
		v, err := assessment.ParseVariant(fallbackVariant)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(fallback.New(nil, nil).Generate(v))
	},
}

func init() {
	fallbackCmd.Flags().StringVar(&fallbackVariant, "variant", string(assessment.VariantNested), "nested or flat")
}
