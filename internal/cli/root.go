// Package cli provides the polyjson command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/reoring/polyjson/gw2"
)

type app struct {
	cfg    Config
	logger *slog.Logger
}

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "polyjson",
		Short:         "Resolve polymorphic Guild Wars 2 item JSON",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR (overrides POLYJSON_LOG_LEVEL)")

	rootCmd.AddCommand(newFamiliesCommand(a), newResolveCommand(a), newFetchCommand(a))
	return rootCmd
}

func (a *app) catalog() (*gw2.Catalog, error) { return a.cfg.catalog(a.logger) }
