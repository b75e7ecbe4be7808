package incident

import (
	"fmt"
	"net/http"
	"safespace/middleware"
	"safespace/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteIncidentController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	router.DELETE("/incidents/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteIncident(c, db, firestoreClient)
	})
}

// DeleteIncident removes a reporter's own local draft. Submitted cases are
// retained server-side for the admin review trail and cannot be deleted here.
func DeleteIncident(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	incidentId := c.Param("id")

	var incident model.Incident
	if err := db.Where("incident_id = ? AND user_id = ?", incidentId, userId).First(&incident).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		return
	}
	if incident.Status != "draft" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Submitted incidents cannot be deleted"})
		return
	}

	if err := db.Delete(&incident).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete incident", "details": err.Error()})
		return
	}

	docRef := firestoreClient.Collection("Incidents").Doc(incident.Destination).Collection("cases").Doc(fmt.Sprintf("incident_%d", incident.IncidentID))
	if _, err := docRef.Delete(c); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete incident from Firestore", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Incident deleted successfully"})
}
