package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates the root cobra command for blockctl
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blockctl",
		Short: "Compose landing page block structures offline",
		Long: `blockctl runs the block selection engine locally.

It reads business criteria from YAML or JSON files, selects and orders
page blocks, derives alternative structures, and lists the trade-specific
blocks the studio injects for a business type.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewSelectCommand())
	cmd.AddCommand(NewProfessionCommand())
	cmd.AddCommand(NewCatalogCommand())

	return cmd
}
