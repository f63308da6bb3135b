package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestDB points the package-global DB at a fresh on-disk database.
// Tests sharing the global connection must not run in parallel.
func openTestDB(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, Open(Config{Path: path}))
	t.Cleanup(func() {
		require.NoError(t, Close())
	})
}
