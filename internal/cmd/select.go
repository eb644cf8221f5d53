package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitestudio-backend/internal/blocks"
)

type selectOptions struct {
	file         string
	mobile       bool
	alternatives int
	format       string
}

// NewSelectCommand creates the 'blockctl select' command
func NewSelectCommand() *cobra.Command {
	opts := &selectOptions{}
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select and order blocks for a criteria file",
		Long: `Select runs the block selector on a criteria file and prints the
ordered blocks. With --alternatives it also derives alternative structures,
and --mobile swaps heavy variants for mobile-friendly ones first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "criteria file (YAML or JSON)")
	cmd.Flags().BoolVar(&opts.mobile, "mobile", false, "apply the mobile optimizer")
	cmd.Flags().IntVar(&opts.alternatives, "alternatives", 0, "number of alternative structures to derive")
	cmd.Flags().StringVar(&opts.format, "format", formatJSON, "output format: json or yaml")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSelect(cmd *cobra.Command, opts *selectOptions) error {
	if opts.alternatives < 0 {
		return fmt.Errorf("--alternatives must not be negative")
	}

	var criteria blocks.Criteria
	if err := readDocument(opts.file, &criteria); err != nil {
		return err
	}

	composition := blocks.Compose(criteria, blocks.ComposeOptions{
		Alternatives: opts.alternatives,
		Mobile:       opts.mobile,
	})
	return writeDocument(cmd.OutOrStdout(), opts.format, composition)
}
