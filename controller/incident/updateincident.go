package incident

import (
	"net/http"
	"safespace/dto"
	"safespace/middleware"
	"safespace/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateIncidentController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	router.PUT("/incidents/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateIncident(c, db, firestoreClient)
	})
}

// UpdateIncident lets the reporting user revise their own record while it is
// still a draft. Once submitted, edits belong to the admin review flow.
func UpdateIncident(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	incidentId := c.Param("id")

	var request dto.UpdateIncidentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	var incident model.Incident
	if err := db.Where("incident_id = ? AND user_id = ?", incidentId, userId).First(&incident).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		return
	}
	if incident.Status != "draft" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only draft incidents can be edited"})
		return
	}

	updates := map[string]interface{}{}
	if request.Title != "" {
		updates["title"] = request.Title
	}
	if request.Description != "" {
		updates["description"] = request.Description
	}
	if request.Location != "" {
		updates["location"] = request.Location
	}
	if request.Witnesses != "" {
		updates["witnesses"] = request.Witnesses
	}
	if request.Severity != "" {
		updates["severity"] = request.Severity
	}
	if request.Category != "" {
		updates["category"] = request.Category
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := db.Model(&incident).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update incident", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Incident updated successfully"})
}
