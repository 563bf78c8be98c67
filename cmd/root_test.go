// SPDX-License-Identifier: MIT
package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lae/cmd"
	"github.com/katalvlaran/lae/config"
)

type artifact struct {
	Result [][]float64 `json:"result"`
	Error  string      `json:"error"`
}

// execRoot runs the root command with args and returns stdout, stderr and the error.
func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rc := cmd.NewRootCommand(strings.NewReader(""), &stdout, &stderr)
	rc.SetArgs(args)
	err := rc.Execute()

	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func readArtifact(t *testing.T, path string) artifact {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var a artifact
	require.NoError(t, json.Unmarshal(raw, &a))

	return a
}

func TestRoot_Success(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json",
		`{"operator": "+", "operands": [[[1, 2], [3, 4]], [[10, 20], [30, 40]]]}`)
	out := filepath.Join(dir, "out.json")

	stdout, _, err := execRoot(t, "3", in, out)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, readArtifact(t, out).Result)

	require.Contains(t, stdout, "Computation completed successfully.")
	require.Contains(t, stdout, "--- Worker Activity Report ---")
	require.Contains(t, stdout, "Worker 2: Fatigue=")
	require.Contains(t, stdout, "Fairness Score (Lower is better)")
}

func TestRoot_Verify(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json", `{"operator": "*", "operands": [
		[[1, 2, 3], [4, 5, 6]],
		[[7, 8], [9, 10], [11, 12]],
		{"operator": "T", "operands": [[[1, 0], [0, 1]]]}
	]}`)
	out := filepath.Join(dir, "out.json")

	_, _, err := execRoot(t, "--verify", "--log-level", "info", "2", in, out)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, readArtifact(t, out).Result)
}

func TestRoot_YAMLInput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.yaml", "operator: T\noperands:\n  - [[1, 2, 3], [4, 5, 6]]\n")
	out := filepath.Join(dir, "out.json")

	_, _, err := execRoot(t, "2", in, out)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, readArtifact(t, out).Result)
}

func TestRoot_ParseErrorArtifact(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json", `{"operator": "%", "operands": [[[1]], [[1]]]}`)
	out := filepath.Join(dir, "out.json")

	stdout, stderr, err := execRoot(t, "2", in, out)
	require.NoError(t, err, "evaluation failures do not fail the command")
	a := readArtifact(t, out)
	require.True(t, strings.HasPrefix(a.Error, "Parse error: "), a.Error)
	require.Nil(t, a.Result)
	require.NotContains(t, stdout, "Computation completed")
	require.Contains(t, stderr, "error parsing input")
}

func TestRoot_MissingInputIsParseError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.json")

	_, _, err := execRoot(t, "1", filepath.Join(dir, "absent.json"), out)
	require.NoError(t, err)
	require.Contains(t, readArtifact(t, out).Error, "Parse error: ")
}

func TestRoot_RuntimeErrorArtifact(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json",
		`{"operator": "*", "operands": [[[1, 2]], [[1, 2]]]}`)
	out := filepath.Join(dir, "out.json")

	_, _, err := execRoot(t, "2", in, out)
	require.NoError(t, err)
	a := readArtifact(t, out)
	require.True(t, strings.HasPrefix(a.Error, "Runtime error: "), a.Error)
	require.Contains(t, a.Error, "dimension mismatch")
}

func TestRoot_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json", `[[1]]`)
	out := filepath.Join(dir, "out.json")

	_, _, err := execRoot(t, "2", in)
	require.Error(t, err, "three positional arguments are required")

	_, _, err = execRoot(t, "many", in, out)
	require.ErrorIs(t, err, config.ErrInvalidThreads)

	_, _, err = execRoot(t, "0", in, out)
	require.ErrorIs(t, err, config.ErrInvalidThreads)

	_, _, err = execRoot(t, "--log-level", "loud", "1", in, out)
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)

	_, err = os.Stat(out)
	require.True(t, os.IsNotExist(err), "no artifact on usage errors")
}

func TestRoot_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json", `{"operator": "-", "operands": [[[1, 2]]]}`)
	out := filepath.Join(dir, "out.json")

	cfgPath := writeInput(t, dir, "lae.toml", "log-level = \"debug\"\nlog-format = \"json\"\n")
	_, stderr, err := execRoot(t, "-c", cfgPath, "2", in, out)
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"evaluation started"`, "debug JSON logs from the config file")
	require.Equal(t, [][]float64{{-1, -2}}, readArtifact(t, out).Result)

	// An explicit flag overrides the file.
	_, stderr, err = execRoot(t, "-c", cfgPath, "--log-level", "error", "2", in, out)
	require.NoError(t, err)
	require.Empty(t, stderr)

	// Environment overrides the file.
	t.Setenv("LAE_LOG_FORMAT", "text")
	_, stderr, err = execRoot(t, "-c", cfgPath, "2", in, out)
	require.NoError(t, err)
	require.Contains(t, stderr, "msg=\"evaluation started\"")

	bad := writeInput(t, dir, "bad.toml", "threads = 4\n")
	_, _, err = execRoot(t, "-c", bad, "2", in, out)
	require.ErrorContains(t, err, "invalid option in configuration file")
}

func TestRoot_MetricsOut(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json",
		`{"operator": "+", "operands": [[[1], [2], [3]], [[4], [5], [6]]]}`)
	out := filepath.Join(dir, "out.json")
	metrics := filepath.Join(dir, "metrics.prom")

	_, _, err := execRoot(t, "--metrics-out", metrics, "2", in, out)
	require.NoError(t, err)
	raw, err := os.ReadFile(metrics)
	require.NoError(t, err)
	text := string(raw)
	require.Contains(t, text, `lae_scheduler_tasks_total{outcome="ok"} 3`)
	require.Contains(t, text, "lae_scheduler_task_duration_seconds_count 3")
	require.Contains(t, text, "lae_scheduler_in_flight 0")

	stdout, _, err := execRoot(t, "--metrics-out", "-", "1", in, out)
	require.NoError(t, err)
	require.Contains(t, stdout, "# TYPE lae_scheduler_worker_fatigue gauge")
}
