package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pecheck/internal/registry"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the Postgres PE database with a JSON file",
		Long: `Import parses a pe_database.json file and replaces the pe_companies table
in one transaction, keeping the file's key order. Use "bundled" to import the
database embedded in the binary.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var source registry.Source = registry.FileSource{Path: args[0]}
	if args[0] == registry.KindBundled {
		source = registry.BundledSource{}
	}
	parsed, err := source.Fetch(ctx)
	if err != nil {
		return err
	}

	database, url, err := connect(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.RunMigrations(url); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := database.ReplaceCompanies(ctx, registry.ToCompanies(parsed)); err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d PE companies from %s\n", parsed.Len(), source.Name())
	return nil
}
