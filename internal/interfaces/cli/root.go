// Package cli defines the sentinel command tree: one-shot batch runs, the
// HTTP trigger server and schema migrations.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the global flags shared by every subcommand.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// NewRootCommand creates the root command with global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sentinel",
		Short: "SLA-Sentinel — batch SLA escalation engine for audit findings",
		Long: "SLA-Sentinel evaluates open audit findings against their SLA policies,\n" +
			"warns owners before due dates, and escalates overdue findings to\n" +
			"management over email and WhatsApp.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: SENTINEL_* env vars only)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format override (json, console)")

	cmd.AddCommand(
		NewRunCmd(opts),
		NewServeCmd(opts),
		NewMigrateCmd(opts),
	)
	return cmd
}

// loadConfig reads configuration from the --config file when given, or from
// SENTINEL_* environment variables alone.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadFromEnv()
}

// newLogger builds the process logger, applying flag overrides on top of the
// configured level and format.
func newLogger(cfg *config.Config, opts *RootOptions) (logging.Logger, error) {
	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	format := cfg.Log.Format
	if opts.LogFormat != "" {
		format = opts.LogFormat
	}
	return logging.NewLogger(logging.LogConfig{Level: level, Format: format})
}

// bootstrap loads config and builds the logger, the shared preamble of every
// subcommand.
func bootstrap(opts *RootOptions) (*config.Config, logging.Logger, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	log, err := newLogger(cfg, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	return cfg, log, nil
}

// Execute runs the sentinel command tree.
func Execute() error {
	return NewRootCommand().Execute()
}

//Personal.AI order the ending
