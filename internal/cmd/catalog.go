package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sitestudio-backend/internal/blocks"
	"sitestudio-backend/internal/blocks/profession"
)

// NewCatalogCommand creates the 'blockctl catalog' command
func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List business types known to the rule catalog",
		Args:  cobra.NoArgs,
		RunE:  runCatalog,
	}
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	heading := color.New(color.Bold, color.FgCyan)

	heading.Fprintln(out, "Business rules")
	for _, bt := range blocks.BusinessTypes() {
		rules, _ := blocks.BusinessRules(bt)
		types := make([]string, 0, len(rules))
		for _, r := range rules {
			types = append(types, r.Type+"/"+r.Variant)
		}
		fmt.Fprintf(out, "  %-12s %s\n", bt, strings.Join(types, ", "))
	}

	fmt.Fprintln(out)
	heading.Fprintln(out, "Profession blocks")
	for _, trade := range profession.Trades() {
		fmt.Fprintf(out, "  %s\n", trade)
	}
	return nil
}
