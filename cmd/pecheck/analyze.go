package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pecheck/internal/background"
	"pecheck/internal/popup"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Run the popup flow for a page",
		Long: `Analyze resolves the company name and PE ownership for a page URL.
Pass the saved page with --html (use - for stdin) to resolve the name from
page signals; without it the name is derived from the domain.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}
	cmd.Flags().String("html", "", "Path to the page HTML, or - for stdin")
	cmd.Flags().Bool("json", false, "Print the view as JSON")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	html, err := readHTML(cmd)
	if err != nil {
		return err
	}

	store, mode, closer, err := loadStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer closer()

	client := background.NewService(store, mode).Start(ctx)
	defer client.Close()

	view := popup.Analyze(ctx, client, args[0], html)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	printView(cmd.OutOrStdout(), view)
	return nil
}

func readHTML(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("html")
	switch path {
	case "":
		return "", nil
	case "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(b), nil
	}
}

func printView(w io.Writer, v popup.View) {
	switch v.State {
	case popup.StateError:
		fmt.Fprintln(w, v.Message)
	case popup.StateUnanalyzable:
		fmt.Fprintln(w, v.Details)
	default:
		fmt.Fprintf(w, "%s (%s)\n", v.CompanyName, v.Domain)
		fmt.Fprintln(w, v.Banner)
		if v.PEOwned {
			fmt.Fprintf(w, "Owner: %s\nAcquired: %s\n", v.Owner, v.Year)
		}
		fmt.Fprintln(w, v.Details)
	}
}
