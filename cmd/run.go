// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lae/config"
	"github.com/katalvlaran/lae/engine"
	"github.com/katalvlaran/lae/output"
	"github.com/katalvlaran/lae/parser"
	"github.com/katalvlaran/lae/scheduling"
)

const (
	parseErrorPrefix   = "Parse error: "
	runtimeErrorPrefix = "Runtime error: "
)

// run evaluates cfg.Input into cfg.Output. Parse and evaluation failures end
// up in the output artifact and return nil; only setup and I/O on the
// artifact itself fail the command.
func run(cfg config.Config, stdout, stderr io.Writer) error {
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := scheduling.NewMetrics(reg)
	if err != nil {
		return err
	}
	exec, err := scheduling.NewExecutor(cfg.Threads,
		scheduling.WithSeed(cfg.Seed),
		scheduling.WithLogger(logger),
		scheduling.WithMetrics(metrics))
	if err != nil {
		return err
	}
	defer exec.Shutdown()
	eng := engine.New(exec, engine.WithLogger(logger))

	x, err := parser.ParseFile(cfg.Input)
	if err != nil {
		logger.Error("error parsing input", slog.String("input", cfg.Input), slog.String("error", err.Error()))
		return output.WriteError(cfg.Output, parseErrorPrefix+parseMessage(err))
	}

	result, err := eng.Evaluate(x)
	if err != nil {
		logger.Error("evaluation failed", slog.String("error", err.Error()))
		return output.WriteError(cfg.Output, runtimeErrorPrefix+err.Error())
	}
	if cfg.Verify {
		if err = engine.Verify(x, result); err != nil {
			logger.Error("verification failed", slog.String("error", err.Error()))
			return output.WriteError(cfg.Output, runtimeErrorPrefix+err.Error())
		}
		logger.Info("result verified against sequential reference")
	}
	if err = output.WriteResult(cfg.Output, result); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Computation completed successfully.")
	fmt.Fprintln(stdout, "--- Worker Activity Report ---")
	fmt.Fprintln(stdout, eng.Report())

	return dumpMetrics(cfg.MetricsOut, reg, stdout)
}

func parseMessage(err error) string {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.Msg
	}

	return err.Error()
}

// newLogger builds the stderr handler for the configured level and format.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, config.FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// dumpMetrics writes every gathered family in text exposition format.
// An empty path disables the dump; "-" writes to stdout.
func dumpMetrics(path string, g prometheus.Gatherer, stdout io.Writer) (err error) {
	if path == "" {
		return nil
	}
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	w := stdout
	if path != "-" {
		var f *os.File
		if f, err = os.Create(path); err != nil {
			return fmt.Errorf("metrics output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics output: %w", err)
		}
	}

	return nil
}
