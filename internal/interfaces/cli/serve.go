package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	httpiface "github.com/turtacn/SLA-Sentinel/internal/interfaces/http"
	"github.com/turtacn/SLA-Sentinel/internal/interfaces/http/handlers"
)

// NewServeCmd creates the trigger-server command.  The server exposes the
// batch trigger over HTTP for external schedulers plus probes and metrics.
func NewServeCmd(opts *RootOptions) *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP trigger server",
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

			engine := httpiface.NewRouter(cfg.Server.Mode, httpiface.RouterDeps{
				Escalation: handlers.NewEscalationHandler(app.Runner, log),
				Health:     handlers.NewHealthHandler(Version, app.healthCheckers()...),
				Metrics:    app.Collector.Handler(),
				Logger:     log,
			})
			srv := httpiface.NewServer(cfg.Server, engine, log)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				log.Info("shutdown signal received", logging.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Stop(ctx)
		},
	}

	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending schema migrations before serving")
	return cmd
}

//Personal.AI order the ending
