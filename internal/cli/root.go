// Package cli implements cancerctl, the maintenance commands of cancer-api.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cancer_api/internal/config"
	"cancer_api/pkg/contextx"
	"cancer_api/pkg/logx"
)

const name = "cancerctl"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// app is shared by the subcommands once the root has loaded the config.
type app struct {
	cfg      config.Config
	logLevel string
	noColor  bool
}

func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Maintenance commands for the cancer prediction service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}

			a.cfg = cfg

			level := cfg.App.LogLevel
			if a.logLevel != "" {
				level = a.logLevel
			}

			log := logx.NewLogger(cmd.ErrOrStderr(), logx.ParseLevel(level), a.noColor || cfg.App.LogNoColor).
				With(slog.String(logx.FieldAppName, name))

			cmd.SetContext(contextx.WithLogger(cmd.Context(), log))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored logs")

	cmd.AddCommand(
		newGenerateDataCommand(a),
		newSelftestCommand(a),
		newPredictCommand(a),
		newSynthCommand(a),
	)

	return cmd
}

// Execute runs the root command until it finishes or a signal arrives.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
