// SPDX-License-Identifier: MIT
package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lae/config"
)

func valid() config.Config {
	c := config.Default()
	c.Threads = 4
	c.Input = "in.json"
	c.Output = "out.json"

	return c
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.Equal(t, "warn", c.LogLevel)
	require.Equal(t, config.FormatText, c.LogFormat)
	require.ErrorIs(t, c.Validate(), config.ErrInvalidThreads, "threads must be supplied")
}

func TestValidate(t *testing.T) {
	require.NoError(t, valid().Validate())

	cases := []struct {
		name   string
		mutate func(*config.Config)
		err    error
	}{
		{"zero threads", func(c *config.Config) { c.Threads = 0 }, config.ErrInvalidThreads},
		{"negative threads", func(c *config.Config) { c.Threads = -3 }, config.ErrInvalidThreads},
		{"no input", func(c *config.Config) { c.Input = " " }, config.ErrMissingPath},
		{"no output", func(c *config.Config) { c.Output = "" }, config.ErrMissingPath},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }, config.ErrInvalidLogLevel},
		{"bad format", func(c *config.Config) { c.LogFormat = "xml" }, config.ErrInvalidLogFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), tc.err)
		})
	}
}

func TestLevel(t *testing.T) {
	c := valid()
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		c.LogLevel = name
		got, err := c.Level()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
