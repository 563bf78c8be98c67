// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lae/config"
)

const envPrefix = "LAE"

// NewRootCommand returns the lae command wired to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()
	rc := &cobra.Command{
		Use:   "lae <threads> <input> <output>",
		Short: "Evaluate a matrix expression on a fatigue-balanced worker pool.",
		Long: `lae reads an expression document (JSON, or YAML by extension), evaluates it
with <threads> workers and writes {"result": [[...]]} or {"error": "..."} to
<output>. Evaluation failures are reported in the output file only.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return setAllConfig(viper.New(), cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			threads, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("threads %q: %w", args[0], config.ErrInvalidThreads)
			}
			cfg.Threads = threads
			cfg.Input = args[1]
			cfg.Output = args[2]
			if err = cfg.Validate(); err != nil {
				return err
			}

			return run(cfg, stdout, stderr)
		},
	}
	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)

	flags := rc.Flags()
	flags.StringP("config", "c", "", "Configuration file to read from (TOML).")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for worker efficiency factors (0 selects the default).")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error.")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json.")
	flags.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Recompute the result sequentially and report any difference as a runtime error.")
	flags.StringVar(&cfg.MetricsOut, "metrics-out", cfg.MetricsOut, "Write scheduler metrics in Prometheus text format to this file (\"-\" for stdout).")

	return rc
}

// setAllConfig layers flags over LAE_* environment variables over the
// --config file, and writes the winning value back into every flag.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	if c := v.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading configuration file '%s': %v", c, err)
		}
		for _, key := range v.AllKeys() {
			if !validTags[key] {
				return fmt.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			return
		}
		flagErr = f.Value.Set(v.GetString(f.Name))
	})

	return flagErr
}
