package poddriver

import (
	"testing"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPodsDependenciesFirst(t *testing.T) {
	pods := []*ast.Pod{
		{Name: "app", DependsOn: []string{"lib", "sys"}},
		{Name: "lib", DependsOn: []string{"sys"}},
	}
	ordered, err := OrderPods(pods)
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Equal(t, "lib", ordered[0].Name)
	assert.Equal(t, "app", ordered[1].Name)
}

func TestOrderPodsDetectsCycle(t *testing.T) {
	pods := []*ast.Pod{
		{Name: "a", DependsOn: []string{"b"}},
		{Name: "b", DependsOn: []string{"a"}},
	}
	_, err := OrderPods(pods)
	require.Error(t, err)
	rep, ok := fxerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, fxerrors.INV003, rep.Code)
}

func TestOrderPodsIgnoresDepsOutsideSet(t *testing.T) {
	pods := []*ast.Pod{
		{Name: "app", DependsOn: []string{"unrelated"}},
	}
	ordered, err := OrderPods(pods)
	require.NoError(t, err)
	require.Len(t, ordered, 1)
	assert.Equal(t, "app", ordered[0].Name)
}
