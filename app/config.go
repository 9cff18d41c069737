package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoNanoID/GoNanoID/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	var asJSON bool

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}

	dumpCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON instead of TOML")

	configCmd.AddCommand(dumpCmd)

	return configCmd
}
