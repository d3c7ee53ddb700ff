package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"saas-docvault-platform/models"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	ErrorCode string      `json:"error_code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// RespondWithError sends a standardized error response
func RespondWithError(c *gin.Context, statusCode int, errorCode, message string, details interface{}) {
	c.JSON(statusCode, ErrorResponse{
		ErrorCode: errorCode,
		Message:   message,
		Details:   details,
	})
}

// RespondWithBadRequest sends a 400 Bad Request error
func RespondWithBadRequest(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, "bad_request", message, details)
}

// RespondWithUnauthorized sends a 401 Unauthorized error
func RespondWithUnauthorized(c *gin.Context, message string) {
	RespondWithError(c, http.StatusUnauthorized, "unauthorized", message, nil)
}

// RespondWithForbidden sends a 403 Forbidden error
func RespondWithForbidden(c *gin.Context, message string) {
	RespondWithError(c, http.StatusForbidden, "forbidden", message, nil)
}

// RespondWithNotFound sends a 404 Not Found error
func RespondWithNotFound(c *gin.Context, message string) {
	RespondWithError(c, http.StatusNotFound, "not_found", message, nil)
}

// RespondWithInternalError sends a 500 Internal Server Error
func RespondWithInternalError(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusInternalServerError, "internal_error", message, details)
}

// RespondWithImportResult returns 200 only when every row imported; a
// partial success is a 400 carrying the full error list, so callers
// never lose row-level detail.
func RespondWithImportResult(c *gin.Context, result *models.ImportResult) {
	status := http.StatusOK
	message := "Import completed successfully"
	if !result.Success {
		status = http.StatusBadRequest
		message = "Import completed with errors"
	}
	c.JSON(status, ImportResultBody(result, message))
}

// ImportResultBody shapes an ImportResult for the JSON surface; the
// headline message carries the row counts.
func ImportResultBody(result *models.ImportResult, message string) gin.H {
	return gin.H{
		"success":         result.Success,
		"message":         fmt.Sprintf("%s: %d processed, %d imported, %d failed", message, result.TotalRecords, result.SuccessfulRecords, result.FailedRecords),
		"processed_count": result.TotalRecords,
		"success_count":   result.SuccessfulRecords,
		"error_count":     result.FailedRecords,
		"messages":        result.Messages,
		"errors":          result.Errors,
	}
}
