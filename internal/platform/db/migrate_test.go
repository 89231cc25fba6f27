package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationsFS, "migrations/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestInitMigrationCreatesBothTables(t *testing.T) {
	data, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)

	sql := string(data)
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS companies")
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS invoices")
	assert.Contains(t, sql, "REFERENCES companies ON DELETE CASCADE")
}
