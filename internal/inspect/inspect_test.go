package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRejectsMissingFanTree(t *testing.T) {
	dir := t.TempDir()
	err := Run(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fan/")
}

func TestEmittedTreeHasFanDirForRun(t *testing.T) {
	dir := t.TempDir()
	podDir := filepath.Join(dir, "fan", "acme")
	require.NoError(t, os.MkdirAll(podDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(podDir, "Widget.py"), []byte("class Widget(Obj):\n    pass\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(podDir, "__init__.py"), []byte(""), 0o644))

	// Run blocks reading stdin via liner; verify only that the fan/
	// tree precondition passes by checking the directory layout instead
	// of driving the interactive loop itself.
	info, err := os.Stat(filepath.Join(dir, "fan"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
