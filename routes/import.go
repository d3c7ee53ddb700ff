package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"saas-docvault-platform/internal/config"
	"saas-docvault-platform/internal/store"
	"saas-docvault-platform/internal/telemetry"
	"saas-docvault-platform/middleware"
	"saas-docvault-platform/services"
	"saas-docvault-platform/utils"
)

func SetupImportRoutes(router *gin.Engine, cfg *config.Config, st store.Store, rdb *redis.Client, metrics *telemetry.Metrics, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	importService := services.NewImportService(st, rdb, time.Duration(cfg.ImportLockTTL)*time.Second)

	group := router.Group("/api/import")
	group.Use(authMiddleware.RequireAuth())

	group.POST("/documents", roleMiddleware.EditorGuard(), HandleImportDocuments(importService, metrics))
	group.POST("/validate", HandleValidateImport(importService))
	group.GET("/template", HandleDownloadTemplate())
}

// HandleImportDocuments runs the full import pipeline against the
// uploaded workbook and the collection named in the query string.
func HandleImportDocuments(importService *services.ImportService, metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := middleware.GetTenantID(c)
		userID := middleware.GetUserID(c)
		if tenantID == "" || userID == "" {
			utils.RespondWithUnauthorized(c, "Caller identity is missing tenant or user claims")
			return
		}

		collectionID, ok := collectionIDFromQuery(c)
		if !ok {
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "no_file", "No file uploaded", nil)
			return
		}

		ctx, cancel := utils.WithLongTimeout(c.Request.Context())
		defer cancel()

		start := time.Now()
		result, err := importService.Run(ctx, file, collectionID, tenantID, userID)
		if err != nil {
			respondImportError(c, err)
			return
		}
		if metrics != nil {
			metrics.RecordImport(time.Since(start).Seconds(), result.SuccessfulRecords, result.FailedRecords)
		}

		utils.RespondWithImportResult(c, result)
	}
}

// HandleValidateImport previews validation errors without persisting
// anything.
func HandleValidateImport(importService *services.ImportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := middleware.GetTenantID(c)
		if tenantID == "" {
			utils.RespondWithUnauthorized(c, "Caller identity is missing tenant claims")
			return
		}

		collectionID, ok := collectionIDFromQuery(c)
		if !ok {
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "no_file", "No file uploaded", nil)
			return
		}

		ctx, cancel := utils.WithLongTimeout(c.Request.Context())
		defer cancel()

		result, err := importService.Validate(ctx, file, collectionID, tenantID)
		if err != nil {
			respondImportError(c, err)
			return
		}

		c.JSON(http.StatusOK, utils.ImportResultBody(result, "Validation finished"))
	}
}

// HandleDownloadTemplate streams a fresh empty import workbook.
func HandleDownloadTemplate() gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := services.GenerateTemplate()
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to generate template", nil)
			return
		}
		defer f.Close()

		c.Header("Content-Disposition", `attachment; filename="import-template.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if _, err := f.WriteTo(c.Writer); err != nil {
			utils.RespondWithInternalError(c, "Failed to write template", nil)
		}
	}
}

func collectionIDFromQuery(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.Query("collectionId")
	if raw == "" {
		utils.RespondWithBadRequest(c, "collectionId query parameter is required", nil)
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		utils.RespondWithBadRequest(c, "Invalid collectionId", gin.H{"collection_id": raw})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondImportError maps the pipeline's request-level failures onto
// status codes; anything else is an unexpected failure.
func respondImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoFile):
		utils.RespondWithError(c, http.StatusBadRequest, "no_file", err.Error(), nil)
	case errors.Is(err, services.ErrUnsupportedFileType):
		utils.RespondWithError(c, http.StatusBadRequest, "unsupported_file_type", err.Error(), nil)
	case errors.Is(err, services.ErrImportInProgress):
		utils.RespondWithError(c, http.StatusConflict, "import_in_progress", err.Error(), nil)
	default:
		utils.RespondWithInternalError(c, "Import failed unexpectedly", gin.H{"error": err.Error()})
	}
}
