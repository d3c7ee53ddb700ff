package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-docvault-platform/internal/store"
	"saas-docvault-platform/models"
)

func TestResolveCatalogEntityIdempotent(t *testing.T) {
	fs := newFakeStore()
	resolver := NewEntityResolver(fs)
	ctx := context.Background()

	first, err := resolver.ResolveCatalogEntity(ctx, models.DimensionTopic, "Foo", "tenantA", "user1")
	require.NoError(t, err)
	require.False(t, first.ID.IsZero())
	assert.Equal(t, "tenantA", first.TenantID)
	assert.True(t, first.IsActive)
	assert.Equal(t, "user1", first.CreatedBy)
	assert.WithinDuration(t, time.Now(), first.CreatedDate, time.Minute)

	second, err := resolver.ResolveCatalogEntity(ctx, models.DimensionTopic, "Foo", "tenantA", "user2")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "second resolution returns the same entity")
	assert.Equal(t, "user1", second.CreatedBy, "existing entity is returned unmodified")
	assert.Len(t, fs.catalog[models.DimensionTopic], 1, "exactly one row created")
}

func TestResolveCatalogEntityTenantIsolation(t *testing.T) {
	fs := newFakeStore()
	resolver := NewEntityResolver(fs)
	ctx := context.Background()

	a, err := resolver.ResolveCatalogEntity(ctx, models.DimensionSection, "Foo", "tenantA", "user1")
	require.NoError(t, err)
	b, err := resolver.ResolveCatalogEntity(ctx, models.DimensionSection, "Foo", "tenantB", "user1")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "same name in different tenants yields distinct entities")
	assert.Len(t, fs.catalog[models.DimensionSection], 2)
}

func TestResolveCatalogEntityLosesCreationRace(t *testing.T) {
	fs := newFakeStore()
	resolver := NewEntityResolver(fs)
	ctx := context.Background()

	// A concurrent import creates the same name between our lookup
	// and our insert proper; the unique index turns our insert into a
	// duplicate-key error and the resolver must return the winner.
	var winnerID = make(chan string, 1)
	fs.beforeCatalogInsert = func(dim models.Dimension, entity *models.CatalogEntity) {
		fs.beforeCatalogInsert = nil
		id, err := fs.InsertCatalogEntity(ctx, dim, &models.CatalogEntity{
			Name: entity.Name, TenantID: entity.TenantID, IsActive: true, CreatedBy: "rival",
		})
		require.NoError(t, err)
		winnerID <- id.Hex()
	}

	resolved, err := resolver.ResolveCatalogEntity(ctx, models.DimensionStage, "Nieuw", "tenantA", "user1")
	require.NoError(t, err)
	assert.Equal(t, <-winnerID, resolved.ID.Hex())
	assert.Len(t, fs.catalog[models.DimensionStage], 1)
}

func TestResolveLinkGetOrCreate(t *testing.T) {
	fs := newFakeStore()
	resolver := NewEntityResolver(fs)
	ctx := context.Background()

	created, err := resolver.ResolveLink(ctx, "B1", "Bron 1", "https://example.com/doc", "tenantA", "user1")
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	again, err := resolver.ResolveLink(ctx, "B1", "ignored", "ignored", "tenantA", "user1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Bron 1", again.Title)
	assert.Len(t, fs.links, 1)
}

func TestResolveFileGetOrCreate(t *testing.T) {
	fs := newFakeStore()
	resolver := NewEntityResolver(fs)
	ctx := context.Background()

	created, err := resolver.ResolveFile(ctx, "F1", "Bijlage 1", "/data/f1.pdf", "pdf", "tenantA", "user1")
	require.NoError(t, err)

	again, err := resolver.ResolveFile(ctx, "F1", "x", "y", "z", "tenantA", "user1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Len(t, fs.files, 1)
}

func TestLookupNeverCreates(t *testing.T) {
	fs := newFakeStore()
	resolver := NewEntityResolver(fs)
	ctx := context.Background()

	_, err := resolver.LookupLink(ctx, "B404", "tenantA")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Empty(t, fs.links, "reference-only lookups must not create entities")

	_, err = resolver.LookupFile(ctx, "F404", "tenantA")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Empty(t, fs.files)
}
