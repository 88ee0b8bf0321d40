package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestNewConfigLayersListedFiles(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n  - development.yaml\n",
		"base.yaml": "service:\n  name: weaver-daemon\nlogging:\n  level: info\n",
		"development.yaml": "logging:\n  level: debug\n",
	})
	t.Setenv("WEAVER_CONFIG_DIR", dir)

	provider, err := NewConfig()
	require.NoError(t, err)

	var name string
	require.NoError(t, provider.Get("service.name").Populate(&name))
	assert.Equal(t, "weaver-daemon", name)

	var level string
	require.NoError(t, provider.Get("logging.level").Populate(&level))
	assert.Equal(t, "debug", level, "later files override earlier ones")
}

func TestNewConfigSkipsMissingListedFiles(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n  - production.yaml\n",
		"base.yaml": "service:\n  name: weaver-daemon\n",
	})
	t.Setenv("WEAVER_CONFIG_DIR", dir)

	provider, err := NewConfig()
	require.NoError(t, err)
	assert.True(t, provider.Get("service.name").HasValue())
}

func TestNewConfigFailsWithoutMeta(t *testing.T) {
	t.Setenv("WEAVER_CONFIG_DIR", t.TempDir())

	_, err := NewConfig()
	assert.Error(t, err)
}
