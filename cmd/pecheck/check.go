package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pecheck/internal/background"
	"pecheck/internal/matcher"
	"pecheck/internal/models"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <domain>",
		Short: "Look up a domain in the PE database",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	store, mode, closer, err := loadStore(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closer()

	domain := args[0]
	rec := background.NewService(store, mode).CheckDomain(domain)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(models.CheckResponse{
			Domain:  matcher.Normalize(domain),
			PEOwned: rec != nil,
			Record:  rec,
		})
	}

	out := cmd.OutOrStdout()
	if rec == nil {
		fmt.Fprintf(out, "%s: not in PE database\n", matcher.Normalize(domain))
		return nil
	}
	fmt.Fprintf(out, "%s: %s is owned by %s (%s, source: %s)\n",
		matcher.Normalize(domain), rec.Company, rec.Owner, rec.Year, rec.Source)
	return nil
}
