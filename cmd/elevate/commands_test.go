package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/elevate/internal/components"
	elevateerrors "github.com/alexisbeaulieu97/elevate/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { components.SetTheme(components.DefaultTheme()) })

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "elevate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "threshold: 20")
	assert.Contains(t, out, "scroll_slop: 16")
	assert.Contains(t, out, "duration: 5s")
	assert.Contains(t, out, "mode: auto")
}

func TestConfigDiffShowsOverrides(t *testing.T) {
	path := writeConfig(t, "touch:\n  threshold: 12\n")

	out, _, err := execute(t, "config", "--config", path, "--diff")
	require.NoError(t, err)

	assert.Contains(t, out, "--- defaults\n+++ effective\n")
	assert.Contains(t, out, "-  threshold: 20\n")
	assert.Contains(t, out, "+  threshold: 12\n")
	assert.Contains(t, out, " touch:\n")
}

func TestConfigDiffWithoutChanges(t *testing.T) {
	out, _, err := execute(t, "config", "--diff")
	require.NoError(t, err)
	assert.Equal(t, "configuration matches the defaults\n", out)
}

func TestConfigVerboseRaisesLogLevel(t *testing.T) {
	out, _, err := execute(t, "config", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "level: debug")
}

func TestConfigCheck(t *testing.T) {
	path := writeConfig(t, "theme:\n  mode: dark\n")

	out, _, err := execute(t, "config", "--check", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "✓ configuration is valid\n", out)
}

func TestInvalidConfigIsReported(t *testing.T) {
	path := writeConfig(t, "touch:\n  threshold: -1\n")

	_, _, err := execute(t, "config", "--check", "--config", path)
	require.Error(t, err)

	var verrs elevateerrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"touch.threshold"}, verrs.Fields())
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestConfigPathMustBeFile(t *testing.T) {
	err := validateConfigPath(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")

	assert.NoError(t, validateConfigPath(""))
}

func TestLogFileReceivesLogs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "elevate.log")

	_, stderr, err := execute(t, "tokens", "--log-file", logPath, "-v")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rendering tokens")
}

func TestTokensPrintsMarkdownWhenNotATerminal(t *testing.T) {
	out, _, err := execute(t, "tokens")
	require.NoError(t, err)

	assert.Contains(t, out, "# Elevate tokens")
	assert.Contains(t, out, "| shade | blue | gray | green | orange | red |")
	assert.Contains(t, out, "| 600 | `#0b5cdf` |")
	assert.Contains(t, out, "| primary | `#0b5cdf` | `#23334b` | `#90c6ff` | `#ffffff` | none |")
	assert.Contains(t, out, "| success | ✔ |")
}

func TestTokensFollowConfiguredTheme(t *testing.T) {
	path := writeConfig(t, "theme:\n  mode: light\n")

	out, _, err := execute(t, "tokens", "--plain", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Theme mode: `light`")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderMarkdown("# Title\n\nbody text\n", "dark", 40)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
	assert.NotContains(t, out, "# Title", "headings are rendered, not echoed")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "bogus")
	require.Error(t, err)
}
