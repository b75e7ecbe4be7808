package analysis

import (
	"errors"
	"net/http"
	"safespace/dto"
	"safespace/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AnalysisController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	classifier := services.NewClassifier()
	router.POST("/api/incident-analysis", func(c *gin.Context) {
		AnalyzeIncident(c, classifier)
	})
}

// AnalyzeIncident classifies a free-text incident narrative. An upstream
// outage never surfaces here: the classifier falls back to its offline
// keyword strategy, so the only client error is a missing description.
func AnalyzeIncident(c *gin.Context, classifier *services.Classifier) {
	var request dto.IncidentAnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incident description is required"})
		return
	}

	assessment, err := classifier.Classify(c.Request.Context(), request.Description, request.Location, request.Witnesses)
	if err != nil {
		if errors.Is(err, services.ErrDescriptionRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incident description is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, assessment)
}
