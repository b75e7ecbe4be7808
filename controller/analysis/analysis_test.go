package analysis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safespace/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	classifier := services.NewClassifier(services.KeywordAnalyzer{})
	router.POST("/api/incident-analysis", func(c *gin.Context) {
		AnalyzeIncident(c, classifier)
	})
	return router
}

func TestAnalyzeIncidentMissingDescription(t *testing.T) {
	router := analysisRouter()

	for _, body := range []string{`{}`, `{"description":""}`, `{"description":"   "}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/incident-analysis", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Incident description is required")
	}
}

func TestAnalyzeIncidentReturnsAssessment(t *testing.T) {
	router := analysisRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/incident-analysis",
		strings.NewReader(`{"description":"He threatened to attack me with a weapon"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var assessment map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assessment))
	assert.Equal(t, "critical", assessment["severity"])
	assert.Equal(t, 0.9, assessment["confidence"])
	assert.Equal(t, true, assessment["policeIntervention"])
	assert.NotEmpty(t, assessment["recommendation"])
}
