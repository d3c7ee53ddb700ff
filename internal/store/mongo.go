package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"saas-docvault-platform/models"
)

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps a connected database. Index creation happens at
// startup in config.ConnectMongoDB.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) FindCatalogEntity(ctx context.Context, dim models.Dimension, name, tenantID string) (*models.CatalogEntity, error) {
	var entity models.CatalogEntity
	err := s.db.Collection(string(dim)).FindOne(ctx, bson.M{
		"name":      name,
		"tenant_id": tenantID,
		"is_active": true,
	}).Decode(&entity)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &entity, nil
}

func (s *mongoStore) InsertCatalogEntity(ctx context.Context, dim models.Dimension, entity *models.CatalogEntity) (primitive.ObjectID, error) {
	res, err := s.db.Collection(string(dim)).InsertOne(ctx, entity)
	if err != nil {
		return primitive.NilObjectID, mapInsertErr(err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoStore) ListCatalogEntities(ctx context.Context, dim models.Dimension, tenantID string) ([]models.CatalogEntity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := s.db.Collection(string(dim)).Find(ctx, bson.M{"tenant_id": tenantID, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entities []models.CatalogEntity
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

func (s *mongoStore) FindLinkByExternalID(ctx context.Context, externalID, tenantID string) (*models.Link, error) {
	var link models.Link
	err := s.db.Collection("links").FindOne(ctx, bson.M{
		"external_id": externalID,
		"tenant_id":   tenantID,
	}).Decode(&link)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &link, nil
}

func (s *mongoStore) InsertLink(ctx context.Context, link *models.Link) (primitive.ObjectID, error) {
	res, err := s.db.Collection("links").InsertOne(ctx, link)
	if err != nil {
		return primitive.NilObjectID, mapInsertErr(err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoStore) FindFileByExternalID(ctx context.Context, externalID, tenantID string) (*models.File, error) {
	var file models.File
	err := s.db.Collection("files").FindOne(ctx, bson.M{
		"external_id": externalID,
		"tenant_id":   tenantID,
	}).Decode(&file)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &file, nil
}

func (s *mongoStore) InsertFile(ctx context.Context, file *models.File) (primitive.ObjectID, error) {
	res, err := s.db.Collection("files").InsertOne(ctx, file)
	if err != nil {
		return primitive.NilObjectID, mapInsertErr(err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoStore) FindCollection(ctx context.Context, id primitive.ObjectID, tenantID string) (*models.Collection, error) {
	var collection models.Collection
	err := s.db.Collection("collections").FindOne(ctx, bson.M{
		"_id":       id,
		"tenant_id": tenantID,
	}).Decode(&collection)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &collection, nil
}

func (s *mongoStore) ListCollections(ctx context.Context, tenantID string) ([]models.Collection, error) {
	cursor, err := s.db.Collection("collections").Find(ctx, bson.M{"tenant_id": tenantID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var collections []models.Collection
	if err := cursor.All(ctx, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (s *mongoStore) InsertDocument(ctx context.Context, doc *models.Document) (primitive.ObjectID, error) {
	res, err := s.db.Collection("documents").InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, mapInsertErr(err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoStore) InsertDocumentVersion(ctx context.Context, version *models.DocumentVersion) error {
	_, err := s.db.Collection("document_versions").InsertOne(ctx, version)
	return mapInsertErr(err)
}

func (s *mongoStore) InsertJunction(ctx context.Context, junction *models.DocumentJunction) error {
	_, err := s.db.Collection("document_junctions").InsertOne(ctx, junction)
	return mapInsertErr(err)
}

func (s *mongoStore) ListDocuments(ctx context.Context, collectionID primitive.ObjectID, tenantID string, limit, offset int64) ([]models.Document, error) {
	filter := bson.M{"tenant_id": tenantID}
	if !collectionID.IsZero() {
		filter["collection_id"] = collectionID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_date", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.db.Collection("documents").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var documents []models.Document
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

func mapFindErr(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func mapInsertErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
