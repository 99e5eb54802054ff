package db

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrationsOrderAndFilter(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_more.up.sql":   {Data: []byte("SELECT 2")},
		"migrations/0001_init.up.sql":   {Data: []byte("SELECT 1")},
		"migrations/0001_init.down.sql": {Data: []byte("SELECT 0")},
		"migrations/README.md":          {Data: []byte("docs")},
	}
	names, err := pendingMigrations(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.up.sql", "0002_more.up.sql"}, names)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	names, err := pendingMigrations(migrationsFS)
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.up.sql", names[0])
}
