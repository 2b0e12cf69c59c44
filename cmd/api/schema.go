package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/schema"
)

var schemaVariant string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema sent to the model",
	RunE: func(cmd *cobra.Command, _ []string) error {
		v, err := assessment.ParseVariant(schemaVariant)
		if err != nil {
			return err
		}
		doc, err := schema.For(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.Indented())
		return err
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaVariant, "variant", string(assessment.VariantNested), "nested or flat")
}
