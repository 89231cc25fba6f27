// Package dbtest hands Postgres-backed tests a migrated, empty database.
package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/platform/db"
)

// EnvDSN names the variable holding the test database connection string.
const EnvDSN = "BIZTIME_TEST_PG_DSN"

// lockKey serializes test packages sharing one database.
const lockKey = 0x62697a74

// Pool returns a pool connected to the database in EnvDSN with the schema
// migrated and both tables emptied. The test is skipped when EnvDSN is unset.
func Pool(t testing.TB) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s not set; skipping Postgres-backed test", EnvDSN)
	}
	ctx := context.Background()

	pool, err := db.New(ctx, dsn, db.PoolConfig{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
		conn.Release()
	})

	require.NoError(t, db.Migrate(dsn))
	_, err = pool.Exec(ctx, `TRUNCATE invoices, companies RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}
