package poddriver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitPodWritesFilesAndInit(t *testing.T) {
	outDir := t.TempDir()
	d := &Driver{OutDir: outDir}

	pod := &ast.Pod{
		Name: "acme",
		Types: []*ast.TypeDef{
			{Qname: "acme::Widget", Pod: "acme", Name: "Widget"},
		},
	}

	summary, err := d.EmitPod(pod)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TypesEmitted)

	widgetPath := filepath.Join(outDir, "fan", "acme", "Widget.py")
	data, err := os.ReadFile(widgetPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class Widget(Obj):")

	initPath := filepath.Join(outDir, "fan", "acme", "__init__.py")
	initData, err := os.ReadFile(initPath)
	require.NoError(t, err)
	assert.Contains(t, string(initData), "'Widget': 'acme.Widget'")
	assert.Contains(t, string(initData), "_loading")
}

func TestEmitPodSkipsUnchangedWithCache(t *testing.T) {
	outDir := t.TempDir()
	cachePath := filepath.Join(t.TempDir(), "cache.sqlite")
	m, err := cache.Open(cachePath)
	require.NoError(t, err)
	defer m.Close()

	d := &Driver{OutDir: outDir, Cache: m}
	pod := &ast.Pod{
		Name:  "acme",
		Types: []*ast.TypeDef{{Qname: "acme::Widget", Pod: "acme", Name: "Widget"}},
	}

	summary1, err := d.EmitPod(pod)
	require.NoError(t, err)
	assert.Equal(t, 1, summary1.TypesEmitted)
	assert.Equal(t, 0, summary1.TypesSkipped)

	summary2, err := d.EmitPod(pod)
	require.NoError(t, err)
	assert.Equal(t, 0, summary2.TypesEmitted)
	assert.Equal(t, 1, summary2.TypesSkipped)

	// A cache-skipped type must still be present in the published pod dir
	// (spec.md §3 invariant 1) — the second run's rename must not drop it.
	widgetPath := filepath.Join(outDir, "fan", "acme", "Widget.py")
	data, err := os.ReadFile(widgetPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class Widget(Obj):")
}

func TestEmitPodUsesNativeFileForReflectionOnly(t *testing.T) {
	outDir := t.TempDir()
	nativeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(nativeDir, "Widget.py"), []byte("class Widget:\n    pass\n"), 0o644))

	d := &Driver{
		OutDir:    outDir,
		NativeDir: func(pod string) string { return nativeDir },
	}
	pod := &ast.Pod{
		Name:  "acme",
		Types: []*ast.TypeDef{{Qname: "acme::Widget", Pod: "acme", Name: "Widget"}},
	}

	summary, err := d.EmitPod(pod)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TypesNative)

	data, err := os.ReadFile(filepath.Join(outDir, "fan", "acme", "Widget.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "class Widget:\n    pass")
	assert.Contains(t, string(data), "_t = Type.find('acme::Widget')")
}
