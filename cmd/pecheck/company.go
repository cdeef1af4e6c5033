package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pecheck/internal/config"
	"pecheck/internal/models"
	"pecheck/internal/registry"
)

// NewCompanyCmd creates the company command group for editing single rows
// of the Postgres PE database.
func NewCompanyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Inspect and edit PE companies stored in Postgres",
	}
	cmd.AddCommand(newCompanyGetCmd())
	cmd.AddCommand(newCompanySetCmd())
	cmd.AddCommand(newCompanyRemoveCmd())
	return cmd
}

func newCompanyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one company",
		Long: `Get prints the company stored under key. An override for the key in
config.yaml (CONFIG_FILE) wins over the stored row at load time, so it is
printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yamlCfg, err := config.LoadYAMLConfig()
			if err != nil {
				return fmt.Errorf("failed to load config file: %w", err)
			}
			if override := yamlCfg.GetOverride(args[0]); override != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s is overridden in the config file\n", override.Key)
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(override)
			}

			database, _, err := connect(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			company, err := database.GetCompanyByKey(cmd.Context(), registry.NormalizeKey(args[0]))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(company)
		},
	}
}

func newCompanySetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key>",
		Short: "Add a company or update the one stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := recordFromFlags(cmd)
			if err != nil {
				return err
			}

			database, _, err := connect(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			company := &models.Company{Key: registry.NormalizeKey(args[0]), Record: rec}
			if err := database.UpsertCompany(cmd.Context(), company); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s at position %d\n", company.Key, company.Position)
			return nil
		},
	}
	cmd.Flags().String("company", "", "Company name (required)")
	cmd.Flags().String("owner", "", "PE owner (required)")
	cmd.Flags().String("year", "", "Acquisition year")
	cmd.Flags().String("record-source", "Manual", "Source of the record")
	cmd.Flags().String("domain", "", "Canonical domain when the key is partial")
	return cmd
}

func recordFromFlags(cmd *cobra.Command) (models.PEOwnershipRecord, error) {
	var rec models.PEOwnershipRecord
	rec.Company, _ = cmd.Flags().GetString("company")
	rec.Owner, _ = cmd.Flags().GetString("owner")
	rec.Year, _ = cmd.Flags().GetString("year")
	rec.Source, _ = cmd.Flags().GetString("record-source")
	rec.Domain, _ = cmd.Flags().GetString("domain")
	if rec.Company == "" || rec.Owner == "" {
		return rec, fmt.Errorf("--company and --owner are required")
	}
	return rec, nil
}

func newCompanyRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Delete a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _, err := connect(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			key := registry.NormalizeKey(args[0])
			if err := database.DeleteCompany(cmd.Context(), key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", key)
			return nil
		},
	}
}
