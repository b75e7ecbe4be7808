package ai

import (
	"net/http"
	"safespace/middleware"
	"safespace/model"
	"safespace/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type documentRequest struct {
	IncidentID int `json:"incidentId" binding:"required"`
}

func AiAssistantController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/ai", middleware.AccessTokenMiddleware())
	{
		routes.POST("/generate-complaint", func(c *gin.Context) {
			GenerateComplaint(c, db)
		})
		routes.POST("/generate-summary", func(c *gin.Context) {
			GenerateSummary(c, db)
		})
		routes.POST("/legal-advice", func(c *gin.Context) {
			LegalAdvice(c, db)
		})
	}
}

func ownedIncident(c *gin.Context, db *gorm.DB) (*model.Incident, bool) {
	userId := c.MustGet("userId").(uint)
	var request documentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return nil, false
	}

	var incident model.Incident
	if err := db.Where("incident_id = ? AND user_id = ?", request.IncidentID, userId).First(&incident).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		return nil, false
	}
	return &incident, true
}

func GenerateComplaint(c *gin.Context, db *gorm.DB) {
	incident, ok := ownedIncident(c, db)
	if !ok {
		return
	}
	c.JSON(200, gin.H{"complaint": services.GeneratePoshComplaint(incident)})
}

func GenerateSummary(c *gin.Context, db *gorm.DB) {
	incident, ok := ownedIncident(c, db)
	if !ok {
		return
	}
	c.JSON(200, gin.H{"summary": services.GenerateIncidentSummary(incident)})
}

func LegalAdvice(c *gin.Context, db *gorm.DB) {
	incident, ok := ownedIncident(c, db)
	if !ok {
		return
	}
	c.JSON(200, gin.H{"advice": services.GenerateLegalAdvice(incident)})
}
