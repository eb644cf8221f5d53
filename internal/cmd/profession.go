package cmd

import (
	"github.com/spf13/cobra"

	"sitestudio-backend/internal/blocks/profession"
)

// NewProfessionCommand creates the 'blockctl profession' command
func NewProfessionCommand() *cobra.Command {
	var file, format string
	cmd := &cobra.Command{
		Use:   "profession <business-type>",
		Short: "List trade-specific blocks for a business type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := map[string]any{}
			if file != "" {
				if err := readDocument(file, &raw); err != nil {
					return err
				}
			}
			list := profession.RecommendedBlocks(args[0], nil, profession.FormDataFromMap(raw))
			return writeDocument(cmd.OutOrStdout(), format, list)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "business profile form (YAML or JSON)")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or yaml")

	return cmd
}
