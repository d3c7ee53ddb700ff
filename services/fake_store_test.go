package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"saas-docvault-platform/internal/store"
	"saas-docvault-platform/models"
)

// fakeStore is an in-memory Store mirroring the Mongo implementation's
// behavior, unique indexes included: inserting a duplicate natural key
// returns store.ErrDuplicate.
type fakeStore struct {
	mu sync.Mutex

	catalog     map[models.Dimension][]models.CatalogEntity
	links       []models.Link
	files       []models.File
	collections []models.Collection
	documents   []models.Document
	versions    []models.DocumentVersion
	junctions   []models.DocumentJunction

	// beforeCatalogInsert runs inside InsertCatalogEntity before the
	// duplicate check, letting tests interleave a concurrent creator.
	beforeCatalogInsert func(dim models.Dimension, entity *models.CatalogEntity)
}

func newFakeStore() *fakeStore {
	return &fakeStore{catalog: make(map[models.Dimension][]models.CatalogEntity)}
}

func (f *fakeStore) addCollection(tenantID, name string) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	col := models.Collection{ID: primitive.NewObjectID(), TenantID: tenantID, Name: name, Status: "active"}
	f.collections = append(f.collections, col)
	return col.ID
}

func (f *fakeStore) addLink(tenantID, externalID, title, url string) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	link := models.Link{ID: primitive.NewObjectID(), ExternalID: externalID, Title: title, URL: url, TenantID: tenantID, IsActive: true}
	f.links = append(f.links, link)
	return link.ID
}

func (f *fakeStore) addFile(tenantID, externalID, name, path string) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	file := models.File{ID: primitive.NewObjectID(), ExternalID: externalID, Name: name, FilePath: path, TenantID: tenantID, IsActive: true}
	f.files = append(f.files, file)
	return file.ID
}

func (f *fakeStore) FindCatalogEntity(ctx context.Context, dim models.Dimension, name, tenantID string) (*models.CatalogEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findCatalogLocked(dim, name, tenantID)
}

func (f *fakeStore) findCatalogLocked(dim models.Dimension, name, tenantID string) (*models.CatalogEntity, error) {
	for _, e := range f.catalog[dim] {
		if e.Name == name && e.TenantID == tenantID && e.IsActive {
			entity := e
			return &entity, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) InsertCatalogEntity(ctx context.Context, dim models.Dimension, entity *models.CatalogEntity) (primitive.ObjectID, error) {
	if f.beforeCatalogInsert != nil {
		f.beforeCatalogInsert(dim, entity)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.findCatalogLocked(dim, entity.Name, entity.TenantID); err == nil {
		return primitive.NilObjectID, store.ErrDuplicate
	}
	stored := *entity
	stored.ID = primitive.NewObjectID()
	f.catalog[dim] = append(f.catalog[dim], stored)
	return stored.ID, nil
}

func (f *fakeStore) ListCatalogEntities(ctx context.Context, dim models.Dimension, tenantID string) ([]models.CatalogEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var entities []models.CatalogEntity
	for _, e := range f.catalog[dim] {
		if e.TenantID == tenantID && e.IsActive {
			entities = append(entities, e)
		}
	}
	return entities, nil
}

func (f *fakeStore) FindLinkByExternalID(ctx context.Context, externalID, tenantID string) (*models.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.links {
		if l.ExternalID == externalID && l.TenantID == tenantID {
			link := l
			return &link, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) InsertLink(ctx context.Context, link *models.Link) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.links {
		if l.ExternalID == link.ExternalID && l.TenantID == link.TenantID {
			return primitive.NilObjectID, store.ErrDuplicate
		}
	}
	stored := *link
	stored.ID = primitive.NewObjectID()
	f.links = append(f.links, stored)
	return stored.ID, nil
}

func (f *fakeStore) FindFileByExternalID(ctx context.Context, externalID, tenantID string) (*models.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fl := range f.files {
		if fl.ExternalID == externalID && fl.TenantID == tenantID {
			file := fl
			return &file, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) InsertFile(ctx context.Context, file *models.File) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fl := range f.files {
		if fl.ExternalID == file.ExternalID && fl.TenantID == file.TenantID {
			return primitive.NilObjectID, store.ErrDuplicate
		}
	}
	stored := *file
	stored.ID = primitive.NewObjectID()
	f.files = append(f.files, stored)
	return stored.ID, nil
}

func (f *fakeStore) FindCollection(ctx context.Context, id primitive.ObjectID, tenantID string) (*models.Collection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.collections {
		if c.ID == id && c.TenantID == tenantID {
			col := c
			return &col, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListCollections(ctx context.Context, tenantID string) ([]models.Collection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var collections []models.Collection
	for _, c := range f.collections {
		if c.TenantID == tenantID {
			collections = append(collections, c)
		}
	}
	return collections, nil
}

func (f *fakeStore) InsertDocument(ctx context.Context, doc *models.Document) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *doc
	stored.ID = primitive.NewObjectID()
	f.documents = append(f.documents, stored)
	return stored.ID, nil
}

func (f *fakeStore) InsertDocumentVersion(ctx context.Context, version *models.DocumentVersion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *version
	stored.ID = primitive.NewObjectID()
	f.versions = append(f.versions, stored)
	return nil
}

func (f *fakeStore) InsertJunction(ctx context.Context, junction *models.DocumentJunction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *junction
	stored.ID = primitive.NewObjectID()
	f.junctions = append(f.junctions, stored)
	return nil
}

func (f *fakeStore) ListDocuments(ctx context.Context, collectionID primitive.ObjectID, tenantID string, limit, offset int64) ([]models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var documents []models.Document
	for _, d := range f.documents {
		if d.TenantID != tenantID {
			continue
		}
		if !collectionID.IsZero() && d.CollectionID != collectionID {
			continue
		}
		documents = append(documents, d)
	}
	return documents, nil
}
