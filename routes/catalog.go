package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"saas-docvault-platform/internal/store"
	"saas-docvault-platform/middleware"
	"saas-docvault-platform/models"
	"saas-docvault-platform/utils"
)

// SetupCatalogRoutes exposes the read surface over collections,
// documents and the catalog dimensions.
func SetupCatalogRoutes(router *gin.Engine, st store.Store, authMiddleware *middleware.AuthMiddleware) {
	group := router.Group("/api")
	group.Use(authMiddleware.RequireAuth())

	group.GET("/collections", HandleListCollections(st))
	group.GET("/documents", HandleListDocuments(st))
	group.GET("/catalog/:dimension", HandleListCatalogEntities(st))
}

func HandleListCollections(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := middleware.GetTenantID(c)
		if tenantID == "" {
			utils.RespondWithUnauthorized(c, "Caller identity is missing tenant claims")
			return
		}

		ctx, cancel := utils.WithTimeout(c.Request.Context())
		defer cancel()

		collections, err := st.ListCollections(ctx, tenantID)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list collections", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"collections": collections})
	}
}

func HandleListDocuments(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := middleware.GetTenantID(c)
		if tenantID == "" {
			utils.RespondWithUnauthorized(c, "Caller identity is missing tenant claims")
			return
		}

		collectionID := primitive.NilObjectID
		if raw := c.Query("collectionId"); raw != "" {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				utils.RespondWithBadRequest(c, "Invalid collectionId", gin.H{"collection_id": raw})
				return
			}
			collectionID = id
		}

		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
		offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
		if limit < 1 || limit > 500 {
			limit = 50
		}
		if offset < 0 {
			offset = 0
		}

		ctx, cancel := utils.WithTimeout(c.Request.Context())
		defer cancel()

		documents, err := st.ListDocuments(ctx, collectionID, tenantID, limit, offset)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list documents", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"documents": documents, "limit": limit, "offset": offset})
	}
}

func HandleListCatalogEntities(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := middleware.GetTenantID(c)
		if tenantID == "" {
			utils.RespondWithUnauthorized(c, "Caller identity is missing tenant claims")
			return
		}

		requested := models.Dimension(c.Param("dimension"))
		valid := false
		for _, dim := range models.AllDimensions {
			if dim == requested {
				valid = true
				break
			}
		}
		if !valid {
			utils.RespondWithNotFound(c, "Unknown catalog dimension")
			return
		}

		ctx, cancel := utils.WithTimeout(c.Request.Context())
		defer cancel()

		entities, err := st.ListCatalogEntities(ctx, requested, tenantID)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list catalog entities", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"dimension": requested, "entities": entities})
	}
}
