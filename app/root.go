// Package app implements the main application commands.
package app

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoNanoID/GoNanoID/internal/config"
)

// options shared by all commands.
type options struct {
	configPath string // directory holding main.toml
	logLevel   string
}

// loadConfig reads the config file if a path was given and falls back to the defaults otherwise.
func (o *options) loadConfig() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}

	return config.ReadConfig(o.configPath)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "go-nanoid",
		Short: "GoNanoID generates short, unique, URL-safe ids",
		Long: `GoNanoID generates short, unique, URL-safe random ids
from a configurable alphabet, on the command line or over http.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return errors.Wrapf(err, "loglevel %s is not supported", opts.logLevel)
			}

			// keep stdout free for the generated ids
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().
				Timestamp().
				Logger()

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"directory containing main.toml (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level for cli commands")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newStartCmd(opts),
		newConfigCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute() //nolint:wrapcheck
}
