package companies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/platform/db/dbtest"
	"github.com/biztime/biztime/internal/shared"
)

func TestPostgresRepository(t *testing.T) {
	repo := NewRepository(dbtest.Pool(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, Company{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."})
	require.NoError(t, err)
	assert.Equal(t, "apple", created.Code)

	_, err = repo.Create(ctx, Company{Code: "apple", Name: "Another Apple"})
	assert.ErrorIs(t, err, shared.ErrDuplicate)

	got, err := repo.Get(ctx, "apple")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := repo.Update(ctx, "apple", Company{Name: "Apple Inc.", Description: "Maker of macOS."})
	require.NoError(t, err)
	assert.Equal(t, Company{Code: "apple", Name: "Apple Inc.", Description: "Maker of macOS."}, updated)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, "apple"))
	assert.ErrorIs(t, repo.Delete(ctx, "apple"), shared.ErrNotFound)

	_, err = repo.Get(ctx, "apple")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = repo.Update(ctx, "apple", Company{Name: "Ghost"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
