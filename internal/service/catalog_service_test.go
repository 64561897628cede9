package service

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-be/internal/apperrors"
	"bookly-be/internal/authz"
	"bookly-be/internal/cache"
	"bookly-be/internal/entities"
	"bookly-be/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestCatalogCreateRoundTrip(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewCatalogService(repo, nil)
	admin := &authz.Actor{UserID: "admin", IsAdmin: true}

	created, err := svc.Create(admin, &models.CreateServiceRequest{
		Name:        "Cleaning",
		Description: "Deep clean",
		Price:       floatPtr(99.50),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Cleaning", created.Name)
	assert.Equal(t, "Deep clean", created.Description)
	assert.Equal(t, 99.50, created.Price)
	// Status defaults to active when omitted
	assert.Equal(t, entities.ServiceStatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCatalogMutationsForbiddenForNonAdmin(t *testing.T) {
	repo := &fakeServiceRepo{}
	existing, err := repo.Create("Cleaning", "desc", 100, entities.ServiceStatusActive)
	require.NoError(t, err)

	svc := NewCatalogService(repo, nil)
	user := &authz.Actor{UserID: "user-1"}

	_, err = svc.Create(user, &models.CreateServiceRequest{Name: "X", Description: "Y", Price: floatPtr(1)})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Update(user, existing.ID, &models.UpdateServiceRequest{Name: strPtr("New")})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.Delete(user, existing.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.ListAll(user)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Underlying data unchanged
	assert.Len(t, repo.services, 1)
	assert.Equal(t, "Cleaning", repo.services[0].Name)
}

func TestCatalogListActiveExcludesInactive(t *testing.T) {
	repo := &fakeServiceRepo{}
	_, err := repo.Create("Open", "desc", 10, entities.ServiceStatusActive)
	require.NoError(t, err)
	_, err = repo.Create("Closed", "desc", 20, entities.ServiceStatusInactive)
	require.NoError(t, err)

	svc := NewCatalogService(repo, nil)
	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Open", active[0].Name)

	admin := &authz.Actor{UserID: "admin", IsAdmin: true}
	all, err := svc.ListAll(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCatalogPartialUpdate(t *testing.T) {
	repo := &fakeServiceRepo{}
	existing, err := repo.Create("Cleaning", "desc", 100, entities.ServiceStatusActive)
	require.NoError(t, err)

	svc := NewCatalogService(repo, nil)
	admin := &authz.Actor{UserID: "admin", IsAdmin: true}

	updated, err := svc.Update(admin, existing.ID, &models.UpdateServiceRequest{
		Price:  floatPtr(120),
		Status: strPtr(entities.ServiceStatusInactive),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cleaning", updated.Name, "unset fields keep their value")
	assert.Equal(t, 120.0, updated.Price)
	assert.Equal(t, entities.ServiceStatusInactive, updated.Status)
}

func TestCatalogUpdateDeleteNotFound(t *testing.T) {
	svc := NewCatalogService(&fakeServiceRepo{}, nil)
	admin := &authz.Actor{UserID: "admin", IsAdmin: true}

	_, err := svc.Update(admin, "svc-nope", &models.UpdateServiceRequest{Name: strPtr("New")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = svc.Delete(admin, "svc-nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogActiveCacheInvalidation(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisCache(mr.Addr())
	require.NoError(t, err)

	repo := &fakeServiceRepo{}
	_, err = repo.Create("Open", "desc", 10, entities.ServiceStatusActive)
	require.NoError(t, err)

	svc := NewCatalogService(repo, c)
	admin := &authz.Actor{UserID: "admin", IsAdmin: true}

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)

	// Cached result served even though the repo changed behind the cache
	_, err = repo.Create("Sneaky", "desc", 5, entities.ServiceStatusActive)
	require.NoError(t, err)
	active, err = svc.ListActive()
	require.NoError(t, err)
	assert.Len(t, active, 1)

	// A catalog mutation invalidates the cache
	_, err = svc.Create(admin, &models.CreateServiceRequest{Name: "New", Description: "d", Price: floatPtr(1)})
	require.NoError(t, err)
	active, err = svc.ListActive()
	require.NoError(t, err)
	assert.Len(t, active, 3)
}
