package app

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GoNanoID/GoNanoID/internal/generator"
	"github.com/GoNanoID/GoNanoID/nanoid"
)

const (
	envPrefix = "NANOID"

	flagSize      = "size"
	flagAlphabet  = "alphabet"
	flagCount     = "count"
	flagNonSecure = "non-secure"
	flagSequence  = "sequence"
)

// parseSequence parses a comma separated list of bytes, e.g. "2,255,0,1".
func parseSequence(s string) ([]byte, error) {
	parts := strings.Split(s, ",")
	seq := make([]byte, 0, len(parts))

	for _, p := range parts {
		b, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid byte %q in sequence", p)
		}

		seq = append(seq, byte(b))
	}

	return seq, nil
}

func newGenerateCmd(opts *options) *cobra.Command {
	v := viper.New()

	generateCmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Print one or more ids",
		Example: `  go-nanoid generate
  go-nanoid generate -s 10 -c 5
  go-nanoid generate -a 0123456789abcdef -s 32
  NANOID_SIZE=8 go-nanoid generate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			// config file values rank below flags and env
			v.SetDefault(flagSize, cfg.Generator.Size)
			v.SetDefault(flagAlphabet, cfg.Generator.Alphabet)
			v.SetDefault(flagNonSecure, cfg.Generator.NonSecure)

			cfg.Generator.NonSecure = v.GetBool(flagNonSecure)

			gen, err := generator.New(cfg.Generator, prometheus.NewRegistry())
			if err != nil {
				return err //nolint:wrapcheck
			}

			if seq := v.GetString(flagSequence); seq != "" {
				bytes, err := parseSequence(seq)
				if err != nil {
					return err
				}

				log.Warn().Str("sequence", seq).Msg("using a fixed byte sequence as random source")
				gen.WithRandom(nanoid.CyclicRandom(bytes...))
			}

			resp, err := gen.Generate(generator.Request{
				Size:     v.GetInt(flagSize),
				Alphabet: v.GetString(flagAlphabet),
				Count:    v.GetInt(flagCount),
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, id := range resp.IDs {
				_, _ = w.WriteString(id)
				_ = w.WriteByte('\n')
			}

			return w.Flush() //nolint:wrapcheck
		},
	}

	f := generateCmd.Flags()
	f.IntP(flagSize, "s", nanoid.DefaultSize, "id length")
	f.StringP(flagAlphabet, "a", nanoid.SafeSymbols, "symbols the id is built from (at most 256)")
	f.IntP(flagCount, "c", 1, "number of ids")
	f.Bool(flagNonSecure, false, "use math/rand instead of crypto/rand")
	f.String(flagSequence, "", "comma separated bytes repeated as random source, for debugging")

	_ = v.BindPFlags(f)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return generateCmd
}
