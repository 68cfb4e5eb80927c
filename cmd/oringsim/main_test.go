package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/oringsim/internal/assembly"
	"github.com/san-kum/oringsim/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_PrintsFailureLine(t *testing.T) {
	out, err := execute(t, "run", "--preset", "quick", "--seed", "5", "--no-plot")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Percentage of failed piston assemblies: "), out)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "%"), out)
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	a, err := execute(t, "run", "-n", "3000", "--seed", "11", "--no-plot")
	require.NoError(t, err)
	b, err := execute(t, "run", "-n", "3000", "--seed", "11", "--no-plot")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_WithChart(t *testing.T) {
	out, err := execute(t, "run", "-n", "2000", "--bins", "50", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "assembly tolerance stack-up")
	assert.Contains(t, out, "interference_stddev")
	assert.Contains(t, out, "right tail failures")
}

func TestRun_WritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "chart.svg")
	js := filepath.Join(dir, "payload.json")

	_, err := execute(t, "run", "-n", "2000", "--seed", "1", "--no-plot", "--svg", svg, "--json", js)
	require.NoError(t, err)

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	data, err = os.ReadFile(js)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"legend"`)
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := [][]string{
		{"run", "-n", "0"},
		{"run", "--bins", "0"},
		{"run", "--lower", "0.5", "--upper", "0.5"},
		{"run", "--lower", "0.6", "--upper", "0.3"},
		{"run", "--lower", "NaN"},
		{"run", "--piston-tol", "inf"},
		{"run", "--sigma", "0"},
		{"run", "--oring-tol", "-1"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			out, err := execute(t, append(args, "--no-plot")...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, assembly.ErrInvalidConfig), err.Error())
			assert.NotContains(t, out, "Percentage of failed")
		})
	}
}

func TestRun_UnknownPreset(t *testing.T) {
	_, err := execute(t, "run", "--preset", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestResolveConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bins: 64\nband:\n  lower: 0.2\n  upper: 0.7\n"), 0644))

	out := filepath.Join(t.TempDir(), "resolved.yaml")
	_, err := execute(t, "init-config", out, "--preset", "quick", "--config", path, "--upper", "0.65")
	require.NoError(t, err)

	cfg, err := config.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Trials, "from preset")
	assert.Equal(t, 64, cfg.Bins, "from file")
	assert.Equal(t, 0.2, cfg.Band.Lower, "from file")
	assert.Equal(t, 0.65, cfg.Band.Upper, "from flag")
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	for _, name := range config.ListPresets() {
		assert.Contains(t, out, name)
	}
}
