package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-docvault-platform/models"
)

func recordImportResponse(t *testing.T, result *models.ImportResult) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondWithImportResult(c, result)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespondWithImportResultSuccess(t *testing.T) {
	result := models.NewImportResult()
	result.TotalRecords = 3
	result.SuccessfulRecords = 3

	w, body := recordImportResponse(t, result)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["processed_count"])
	assert.Contains(t, body["message"], "3 processed, 3 imported, 0 failed")
}

func TestRespondWithImportResultPartialFailure(t *testing.T) {
	result := models.NewImportResult()
	result.AddError("Eis", "Row 4: required value 'Eis' is empty", models.ErrorTypeValidation, 4)
	result.TotalRecords = 5
	result.SuccessfulRecords = 4
	result.FailedRecords = 1

	w, body := recordImportResponse(t, result)

	assert.Equal(t, http.StatusBadRequest, w.Code, "partial success keeps the error status")
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(1), body["error_count"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
}
