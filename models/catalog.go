package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dimension identifies one normalized classification axis. The value is
// also the Mongo collection name holding that axis' entities.
type Dimension string

const (
	DimensionSection          Dimension = "sections"
	DimensionStage            Dimension = "stages"
	DimensionClient           Dimension = "clients"
	DimensionLocation         Dimension = "locations"
	DimensionArea             Dimension = "areas"
	DimensionTopic            Dimension = "topics"
	DimensionSubtopic         Dimension = "subtopics"
	DimensionEnforcementLevel Dimension = "enforcement_levels"
)

// AllDimensions lists every catalog dimension in junction order.
var AllDimensions = []Dimension{
	DimensionSection,
	DimensionStage,
	DimensionClient,
	DimensionLocation,
	DimensionArea,
	DimensionTopic,
	DimensionSubtopic,
	DimensionEnforcementLevel,
}

// CatalogEntity is one tenant-scoped entry of a catalog dimension.
// Within a tenant, Name is the natural key (case-sensitive exact match).
type CatalogEntity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	TenantID    string             `bson:"tenant_id" json:"tenant_id"`
	OrderIndex  int                `bson:"order_index" json:"order_index"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedDate time.Time          `bson:"created_date" json:"created_date"`
}

// Link is a source-reference artifact. ExternalID is the natural key
// used when a specification row refers to it by cross-sheet reference.
type Link struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	URL         string             `bson:"url" json:"url"`
	ExternalID  string             `bson:"external_id" json:"external_id"`
	TenantID    string             `bson:"tenant_id" json:"tenant_id"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedDate time.Time          `bson:"created_date" json:"created_date"`
}

// File is an attachment artifact, keyed by ExternalID like Link.
type File struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	FilePath    string             `bson:"file_path" json:"file_path"`
	FileType    string             `bson:"file_type" json:"file_type"`
	ExternalID  string             `bson:"external_id" json:"external_id"`
	TenantID    string             `bson:"tenant_id" json:"tenant_id"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedDate time.Time          `bson:"created_date" json:"created_date"`
}
