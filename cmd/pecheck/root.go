package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pecheck/internal/config"
	"pecheck/internal/db"
	"pecheck/internal/matcher"
	"pecheck/internal/registry"
)

// NewRootCmd creates the root command for pecheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pecheck",
		Short: "Check whether a website's company is owned by private equity",
		Long: `pecheck looks up domains in the PE ownership database, resolves company
names from page HTML, and manages the Postgres copy of the database.

Defaults come from the same environment variables as the server
(PE_DATABASE_SOURCE, PE_DATABASE_FILE, MATCH_MODE, DATABASE_URL).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg := config.Load()
	cmd.PersistentFlags().String("source", cfg.DatabaseSource, "PE database source: bundled, file or postgres")
	cmd.PersistentFlags().String("file", cfg.DatabaseFile, "JSON database file for the file source")
	cmd.PersistentFlags().String("mode", cfg.MatchMode, "Match mode: substring or label")
	cmd.PersistentFlags().String("database-url", cfg.DatabaseURL, "Postgres connection string")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewDumpCmd())
	cmd.AddCommand(NewNameCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewCompanyCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect opens Postgres from the --database-url flag. The caller closes it.
func connect(ctx context.Context, cmd *cobra.Command) (*db.DB, string, error) {
	url, _ := cmd.Flags().GetString("database-url")
	if url == "" {
		return nil, "", fmt.Errorf("DATABASE_URL or --database-url is required")
	}
	database, err := db.New(ctx, url)
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, url, nil
}

// loadStore loads the database selected by the persistent flags. A failed
// load is reported but the fallback database is still returned.
func loadStore(ctx context.Context, cmd *cobra.Command) (*registry.Store, matcher.Mode, func(), error) {
	kind, _ := cmd.Flags().GetString("source")
	path, _ := cmd.Flags().GetString("file")
	modeFlag, _ := cmd.Flags().GetString("mode")

	mode, err := matcher.ParseMode(modeFlag)
	if err != nil {
		return nil, "", nil, err
	}

	closer := func() {}
	var database *db.DB
	if kind == registry.KindPostgres {
		database, _, err = connect(ctx, cmd)
		if err != nil {
			return nil, "", nil, err
		}
		closer = database.Close
	}

	source, err := registry.SourceFor(kind, path, database)
	if err != nil {
		closer()
		return nil, "", nil, err
	}

	store := registry.NewStore()
	if err := store.Load(ctx, source); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (using fallback database)\n", err)
	}
	return store, mode, closer, nil
}
