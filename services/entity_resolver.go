package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saas-docvault-platform/internal/store"
	"saas-docvault-platform/models"
)

// EntityResolver resolves display names and external ids to
// tenant-scoped entities, creating them on first reference. Creation is
// a single-entity commit, not batched with the rest of the import.
type EntityResolver struct {
	store store.Store
}

func NewEntityResolver(s store.Store) *EntityResolver {
	return &EntityResolver{store: s}
}

// ResolveCatalogEntity returns the active entity with the given name in
// the tenant, creating it when absent. When the insert loses a race to
// a concurrent import (unique index on name+tenant), the winner's
// entity is looked up once and returned instead of failing.
func (r *EntityResolver) ResolveCatalogEntity(ctx context.Context, dim models.Dimension, name, tenantID, userID string) (*models.CatalogEntity, error) {
	entity, err := r.store.FindCatalogEntity(ctx, dim, name, tenantID)
	if err == nil {
		return entity, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("lookup %s '%s': %w", dim, name, err)
	}

	created := &models.CatalogEntity{
		Name:        name,
		TenantID:    tenantID,
		IsActive:    true,
		CreatedBy:   userID,
		CreatedDate: time.Now(),
	}
	id, err := r.store.InsertCatalogEntity(ctx, dim, created)
	if err == nil {
		created.ID = id
		return created, nil
	}
	if errors.Is(err, store.ErrDuplicate) {
		// Someone else just created it; take theirs.
		return r.store.FindCatalogEntity(ctx, dim, name, tenantID)
	}
	return nil, fmt.Errorf("create %s '%s': %w", dim, name, err)
}

// ResolveLink gets or creates a link by external id within the tenant.
// Used when processing the links sheet itself.
func (r *EntityResolver) ResolveLink(ctx context.Context, externalID, title, rawURL, tenantID, userID string) (*models.Link, error) {
	link, err := r.store.FindLinkByExternalID(ctx, externalID, tenantID)
	if err == nil {
		return link, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("lookup link '%s': %w", externalID, err)
	}

	created := &models.Link{
		Title:       title,
		URL:         rawURL,
		ExternalID:  externalID,
		TenantID:    tenantID,
		IsActive:    true,
		CreatedBy:   userID,
		CreatedDate: time.Now(),
	}
	id, err := r.store.InsertLink(ctx, created)
	if err == nil {
		created.ID = id
		return created, nil
	}
	if errors.Is(err, store.ErrDuplicate) {
		return r.store.FindLinkByExternalID(ctx, externalID, tenantID)
	}
	return nil, fmt.Errorf("create link '%s': %w", externalID, err)
}

// ResolveFile gets or creates a file artifact by external id.
func (r *EntityResolver) ResolveFile(ctx context.Context, externalID, name, filePath, fileType, tenantID, userID string) (*models.File, error) {
	file, err := r.store.FindFileByExternalID(ctx, externalID, tenantID)
	if err == nil {
		return file, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("lookup file '%s': %w", externalID, err)
	}

	created := &models.File{
		Name:        name,
		FilePath:    filePath,
		FileType:    fileType,
		ExternalID:  externalID,
		TenantID:    tenantID,
		IsActive:    true,
		CreatedBy:   userID,
		CreatedDate: time.Now(),
	}
	id, err := r.store.InsertFile(ctx, created)
	if err == nil {
		created.ID = id
		return created, nil
	}
	if errors.Is(err, store.ErrDuplicate) {
		return r.store.FindFileByExternalID(ctx, externalID, tenantID)
	}
	return nil, fmt.Errorf("create file '%s': %w", externalID, err)
}

// LookupLink resolves a cross-sheet reference token. Reference-only
// rows never create entities: a miss is reported as store.ErrNotFound.
func (r *EntityResolver) LookupLink(ctx context.Context, externalID, tenantID string) (*models.Link, error) {
	return r.store.FindLinkByExternalID(ctx, externalID, tenantID)
}

// LookupFile resolves a cross-sheet file reference token, get-only.
func (r *EntityResolver) LookupFile(ctx context.Context, externalID, tenantID string) (*models.File, error) {
	return r.store.FindFileByExternalID(ctx, externalID, tenantID)
}
