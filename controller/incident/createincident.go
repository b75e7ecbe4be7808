package incident

import (
	"fmt"
	"net/http"
	"safespace/dto"
	"safespace/middleware"
	"safespace/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateIncidentController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	router.POST("/incidents", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateIncident(c, db, firestoreClient)
	})
}

func CreateIncident(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	var request dto.CreateIncidentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	// HR submissions must name the organization so the case can be routed.
	if request.Destination == "hr" && request.OrganizationName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required for HR submissions"})
		return
	}

	severity := request.Severity
	if severity == "" {
		severity = "medium"
	}
	category := request.Category
	if category == "" {
		category = "other"
	}

	incident := model.Incident{
		UserID:           int(userId),
		Title:            request.Title,
		Description:      request.Description,
		Location:         request.Location,
		Witnesses:        request.Witnesses,
		Severity:         severity,
		Category:         category,
		Destination:      request.Destination,
		OrganizationName: request.OrganizationName,
		Status:           "draft",
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to start transaction", "details": err.Error()})
		return
	}

	var user model.User
	if err := tx.Select("user_id", "username").Where("user_id = ?", userId).First(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(500, gin.H{"error": "User not found", "details": err.Error()})
		return
	}

	if err := tx.Create(&incident).Error; err != nil {
		tx.Rollback()
		c.JSON(500, gin.H{"error": "Failed to save incident", "details": err.Error()})
		return
	}

	// Mirror the routing metadata (not the narrative) so the admin dashboard
	// can surface new cases without a direct SQL dependency.
	incidentDoc := map[string]interface{}{
		"IncidentID":  incident.IncidentID,
		"Severity":    incident.Severity,
		"Category":    incident.Category,
		"Destination": incident.Destination,
		"Status":      incident.Status,
		"CreateAt":    incident.CreateAt,
	}
	docRef := firestoreClient.Collection("Incidents").Doc(incident.Destination).Collection("cases").Doc(fmt.Sprintf("incident_%d", incident.IncidentID))
	if _, err := docRef.Set(c, incidentDoc); err != nil {
		tx.Rollback()
		c.JSON(500, gin.H{"error": "Failed to save incident to Firestore", "details": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to commit transaction", "details": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"message":  "Incident created successfully",
		"incident": incidentSummary(incident),
	})
}
