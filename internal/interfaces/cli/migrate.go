package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres"
)

// migrationSource converts the configured migration directory into the
// file:// source URL golang-migrate expects.
func migrationSource(cfg *config.Config) string {
	return "file://" + cfg.Database.MigrationPath
}

// migrateUp applies all pending migrations.  Shared by the migrate command
// and the --migrate flag on run/serve.
func migrateUp(cfg *config.Config) error {
	return postgres.RunMigrations(postgres.BuildDSN(cfg.Database), migrationSource(cfg))
}

// NewMigrateCmd creates the schema-migration command tree.
func NewMigrateCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap(opts)
			if err != nil {
				return err
			}
			if err := migrateUp(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations by the given number of steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap(opts)
			if err != nil {
				return err
			}
			if err := postgres.RollbackMigration(postgres.BuildDSN(cfg.Database), migrationSource(cfg), steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d step(s)\n", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap(opts)
			if err != nil {
				return err
			}
			version, dirty, err := postgres.MigrationStatus(postgres.BuildDSN(cfg.Database), migrationSource(cfg))
			if err != nil {
				return err
			}
			if version == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %t\n", version, dirty)
			return nil
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

//Personal.AI order the ending
