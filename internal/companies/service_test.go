package companies

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/shared"
)

func TestServiceCreateDerivesCode(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), CompanyForm{Name: "Apple", Description: "Maker of OSX."})
	require.NoError(t, err)

	assert.Equal(t, Company{Code: "apple", Name: "Apple", Description: "Maker of OSX."}, created)
}

func TestServiceCreateDuplicateCodeFails(t *testing.T) {
	svc := NewService(newMemoryRepo(Company{Code: "apple", Name: "Apple"}))

	_, err := svc.Create(context.Background(), CompanyForm{Name: "APPLE!"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrDuplicate))
}

func TestServiceCreateRejectsBlankOrUnsluggableName(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Create(context.Background(), CompanyForm{Name: "   "})
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.Create(context.Background(), CompanyForm{Name: "?!"})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestServiceListReturnsEmptySlice(t *testing.T) {
	svc := NewService(newMemoryRepo())

	companies, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, companies)
	assert.Empty(t, companies)
}

func TestServiceListPropagatesStorageError(t *testing.T) {
	repo := newMemoryRepo()
	repo.listErr = errors.New("connection reset")
	svc := NewService(repo)

	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "connection reset")
}

func TestServiceUpdateReplacesMutableFields(t *testing.T) {
	svc := NewService(newMemoryRepo(Company{Code: "ibm", Name: "IBM", Description: "Big blue."}))

	updated, err := svc.Update(context.Background(), "ibm", CompanyForm{Name: "IBM Corp", Description: ""})
	require.NoError(t, err)

	assert.Equal(t, Company{Code: "ibm", Name: "IBM Corp", Description: ""}, updated)
}

func TestServiceMissingCompanyIsNotFound(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.Update(ctx, "nope", CompanyForm{Name: "Nope"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = svc.Delete(ctx, "nope")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestServiceDeleteThenGetIsNotFound(t *testing.T) {
	svc := NewService(newMemoryRepo(Company{Code: "ibm", Name: "IBM"}))
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "ibm"))

	_, err := svc.Get(ctx, "ibm")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
