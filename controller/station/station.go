package station

import (
	"net/http"
	"safespace/dto"
	"safespace/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func StationController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	router.POST("/api/police-stations", func(c *gin.Context) {
		FindStations(c)
	})
}

func FindStations(c *gin.Context) {
	var request dto.StationLookupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid latitude and longitude coordinates are required"})
		return
	}
	if request.Latitude == nil || request.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid latitude and longitude coordinates are required"})
		return
	}

	radius := 10.0
	if request.Radius != nil {
		radius = *request.Radius
	}

	stations, message := services.FindNearbyStations(*request.Latitude, *request.Longitude, radius)

	c.JSON(http.StatusOK, gin.H{
		"policeStations": stations,
		"message":        message,
	})
}
