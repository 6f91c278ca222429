package main

import (
	"fmt" // Output formatting
	"os"  // Exit codes

	"soulid/internal/config" // Custom import path (Config)
	"soulid/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
	"github.com/spf13/cobra"     // CLI commands
)

// copyOptions holds flags for the copy command
type copyOptions struct {
	FromDriver string
	FromDSN    string
}

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	if err := newRootCommand(cfg).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the SoulID database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.DBDriver, "driver", cfg.DBDriver, "target database driver (mysql, postgres, sqlite)")
	root.PersistentFlags().StringVar(&cfg.DBDSN, "dsn", cfg.DBDSN, "target DSN, defaults to one built from DB_* variables")
	root.AddCommand(newSchemaCommand(cfg), newCopyCommand(cfg))
	return root
}

func newSchemaCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create or update the profiles and tokens tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Open(cfg.DBDriver, cfg.DSN())
			if err != nil {
				return err
			}
			if err := db.Migrate(conn); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", cfg.DBDriver)
			return nil
		},
	}
}

func newCopyCommand(cfg *config.Config) *cobra.Command {
	opts := &copyOptions{}
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy profiles and tokens from another database into the target",
		Long: `Copy profiles and tokens from another database into the target.

Identifiers and timestamps are preserved and rows already present in the
target are skipped, so the command can be re-run.

Example:
  migrate copy --from-driver sqlite --from-dsn legacy.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := db.Open(opts.FromDriver, opts.FromDSN)
			if err != nil {
				return fmt.Errorf("open source: %w", err)
			}
			dst, err := db.Open(cfg.DBDriver, cfg.DSN())
			if err != nil {
				return fmt.Errorf("open target: %w", err)
			}
			if err := db.Migrate(dst); err != nil {
				return err
			}
			stats, err := db.Copy(cmd.Context(), src, dst)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "copied %d profiles and %d tokens\n", stats.Profiles, stats.Tokens)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.FromDriver, "from-driver", "", "source database driver")
	cmd.Flags().StringVar(&opts.FromDSN, "from-dsn", "", "source DSN")
	_ = cmd.MarkFlagRequired("from-driver")
	_ = cmd.MarkFlagRequired("from-dsn")
	return cmd
}
