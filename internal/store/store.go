// Package store is the persistence boundary of the import pipeline.
// The pipeline only sees the Store interface; the Mongo implementation
// lives alongside it.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"saas-docvault-platform/models"
)

var (
	// ErrNotFound means no entity matched the natural key.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate means an insert hit a uniqueness constraint. For
	// get-or-create callers this signals a concurrent creator won the
	// race and the lookup should be retried.
	ErrDuplicate = errors.New("store: duplicate key")
)

type Store interface {
	FindCatalogEntity(ctx context.Context, dim models.Dimension, name, tenantID string) (*models.CatalogEntity, error)
	InsertCatalogEntity(ctx context.Context, dim models.Dimension, entity *models.CatalogEntity) (primitive.ObjectID, error)
	ListCatalogEntities(ctx context.Context, dim models.Dimension, tenantID string) ([]models.CatalogEntity, error)

	FindLinkByExternalID(ctx context.Context, externalID, tenantID string) (*models.Link, error)
	InsertLink(ctx context.Context, link *models.Link) (primitive.ObjectID, error)
	FindFileByExternalID(ctx context.Context, externalID, tenantID string) (*models.File, error)
	InsertFile(ctx context.Context, file *models.File) (primitive.ObjectID, error)

	FindCollection(ctx context.Context, id primitive.ObjectID, tenantID string) (*models.Collection, error)
	ListCollections(ctx context.Context, tenantID string) ([]models.Collection, error)

	InsertDocument(ctx context.Context, doc *models.Document) (primitive.ObjectID, error)
	InsertDocumentVersion(ctx context.Context, version *models.DocumentVersion) error
	InsertJunction(ctx context.Context, junction *models.DocumentJunction) error
	ListDocuments(ctx context.Context, collectionID primitive.ObjectID, tenantID string, limit, offset int64) ([]models.Document, error)
}
