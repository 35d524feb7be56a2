package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.sqlite")
	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	upToDate, err := m.UpToDate("acme", "Widget", "hash1")
	require.NoError(t, err)
	assert.False(t, upToDate)

	require.NoError(t, m.Record("acme", "Widget", "hash1"))

	upToDate, err = m.UpToDate("acme", "Widget", "hash1")
	require.NoError(t, err)
	assert.True(t, upToDate)

	upToDate, err = m.UpToDate("acme", "Widget", "hash2")
	require.NoError(t, err)
	assert.False(t, upToDate)
}

func TestManifestRecordUpdatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.sqlite")
	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Record("acme", "Widget", "hash1"))
	require.NoError(t, m.Record("acme", "Widget", "hash2"))

	upToDate, err := m.UpToDate("acme", "Widget", "hash2")
	require.NoError(t, err)
	assert.True(t, upToDate)
}
