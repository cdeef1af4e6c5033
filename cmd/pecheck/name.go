package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pecheck/internal/naming"
)

// NewNameCmd creates the name command.
func NewNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name <domain>",
		Short: "Derive a company name from a domain or page title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title, _ := cmd.Flags().GetString("title"); title != "" {
				fmt.Fprintln(cmd.OutOrStdout(), naming.CleanTitle(title))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), naming.FromDomain(args[0]))
			return nil
		},
	}
	cmd.Flags().String("title", "", "Clean this page title instead of using the domain")
	return cmd
}
