package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
)

// NewRunCmd creates the one-shot batch command.  Cron-style deployments call
// this on a schedule; the summary goes to stdout as JSON so schedulers can
// capture it.
func NewRunCmd(opts *RootOptions) *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one escalation batch and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}

			if migrateFirst {
				if err := migrateUp(cfg); err != nil {
					return err
				}
			}

			app, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()

			summary, err := app.Runner.Run(cmd.Context())
			if err != nil {
				log.Error("escalation run failed", logging.Err(err))
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}

	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending schema migrations before running")
	return cmd
}

//Personal.AI order the ending
