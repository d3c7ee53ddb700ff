package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the import target container. It must pre-exist; the
// import pipeline never creates collections.
type Collection struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID    string             `bson:"tenant_id" json:"tenant_id"`
	Name        string             `bson:"name" json:"name"`
	Status      string             `bson:"status" json:"status"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedDate time.Time          `bson:"created_date" json:"created_date"`
}

// Document is one imported requirement record.
type Document struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CollectionID primitive.ObjectID `bson:"collection_id" json:"collection_id"`
	TenantID     string             `bson:"tenant_id" json:"tenant_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Status       string             `bson:"status" json:"status"`
	Version      int                `bson:"version" json:"version"`
	CreatedBy    string             `bson:"created_by" json:"created_by"`
	CreatedDate  time.Time          `bson:"created_date" json:"created_date"`
}

// DocumentVersion is an immutable snapshot of a document's content at
// import time.
type DocumentVersion struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DocumentID    primitive.ObjectID `bson:"document_id" json:"document_id"`
	TenantID      string             `bson:"tenant_id" json:"tenant_id"`
	VersionNumber int                `bson:"version_number" json:"version_number"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Status        string             `bson:"status" json:"status"`
	CreatedBy     string             `bson:"created_by" json:"created_by"`
	CreatedDate   time.Time          `bson:"created_date" json:"created_date"`
}

// DocumentJunction links a document to one catalog entity, Link or File.
// Dimension names the axis ("sections", ... , "links", "files").
type DocumentJunction struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DocumentID primitive.ObjectID `bson:"document_id" json:"document_id"`
	Dimension  string             `bson:"dimension" json:"dimension"`
	EntityID   primitive.ObjectID `bson:"entity_id" json:"entity_id"`
	OrderIndex int                `bson:"order_index" json:"order_index"`
	TenantID   string             `bson:"tenant_id" json:"tenant_id"`
}

// Junction dimensions for reference artifacts, alongside AllDimensions.
const (
	JunctionLinks = "links"
	JunctionFiles = "files"
)

// Document status constants
const (
	DocumentStatusImported = "imported"
	DocumentStatusActive   = "active"
	DocumentStatusArchived = "archived"
)
