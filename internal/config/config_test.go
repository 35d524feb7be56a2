package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "fanxpy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeTempConfig(t, `
outDir: ./out
pods:
  - name: acme
    nativeDir: ./py/acme
  - name: sys
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./out", cfg.OutDir)
	assert.Equal(t, "./py/acme", cfg.NativeDirFor("acme"))
	assert.Equal(t, "", cfg.NativeDirFor("sys"))
	assert.Equal(t, "", cfg.NativeDirFor("missing"))
	assert.Contains(t, cfg.CacheDB, "fanxpy-cache.sqlite")
}

func TestLoadMissingOutDir(t *testing.T) {
	path := writeTempConfig(t, `
pods:
  - name: acme
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "outDir")
}

func TestLoadMissingPods(t *testing.T) {
	path := writeTempConfig(t, `
outDir: ./out
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "pods")
}
