// Package command contains the CLI command constructors.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/HenningWaack/ccAcmePairing/internal/config"
	"github.com/HenningWaack/ccAcmePairing/internal/observability"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	configFilePath := filepath.Join(xdg.ConfigHome, "acme.yaml")
	cmd := &cobra.Command{
		Use:          "acme [command] [flags]",
		Short:        "The acme product catalog API server",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadOrDefaultConfig(configFilePath)
			if err != nil {
				return fmt.Errorf("failed to load configuration file: %w", err)
			}
			logger := observability.Init(cfg.SlogLevel())
			slog.SetDefault(logger)
			logger.DebugContext(cmd.Context(), "configuration loaded",
				slog.String("config_file", configFilePath),
				slog.String("listen_address", cfg.ListenAddress),
				slog.String("db_filepath", cfg.DBFilepath),
			)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configFilePath,
		"config", "c",
		configFilePath,
		"path to the configuration file",
	)

	cmd.AddCommand(
		serveCommand(),
		seedCommand(),
		hashpwCommand(),
	)

	return cmd
}

// loadOrDefaultConfig loads the config file, falling back to the built-in
// defaults when no file exists at the path.
func loadOrDefaultConfig(configFilePath string) (config.Config, error) {
	cfg, err := config.Load(configFilePath)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
