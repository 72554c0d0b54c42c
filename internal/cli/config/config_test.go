package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbanpro/internal/cli"
	appconfig "github.com/thenoetrevino/kanbanpro/internal/config"
	"github.com/thenoetrevino/kanbanpro/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := ConfigCmd()
	testutil.SetupCobraCommand(cmd, args)

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return output, err
}

func TestInit_WritesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	output, err := run(t, "init")
	require.NoError(t, err)

	path := filepath.Join(dir, "kanbanpro", "config.yaml")
	assert.Contains(t, output, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: sqlite")
	assert.Contains(t, string(data), "key: kanban-columns")
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "kanbanpro", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: memory\n"), 0o644))

	_, err := run(t, "init", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: memory")

	_, err = run(t, "init", "--force")
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: sqlite")
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	output, err := run(t, "path")
	require.NoError(t, err)

	want, err := appconfig.Path()
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(output))
}
