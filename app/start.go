package app

import (
	"github.com/spf13/cobra"

	"github.com/GoNanoID/GoNanoID/internal/daemon"
)

func newStartCmd(opts *options) *cobra.Command {
	var devMode bool

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the GoNanoID web service",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start()
		},
	}

	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	return startCmd
}
