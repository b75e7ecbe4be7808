package fir

import (
	"net/http"
	"safespace/dto"
	"safespace/model"
	"safespace/services"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func FirController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	submitter := services.NewSimulatedSubmitter()
	router.POST("/api/fir-draft", func(c *gin.Context) {
		BuildDraft(c)
	})
	router.POST("/api/submit-fir", func(c *gin.Context) {
		SubmitFir(c, db, firestoreClient, submitter)
	})
}

// BuildDraft assembles the escalation artifact from incident fields and the
// station the caller selected. The caller reviews and edits the draft before
// invoking the submission endpoint.
func BuildDraft(c *gin.Context) {
	var request dto.FirDraftRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incident description, location and police station are required"})
		return
	}
	if request.PoliceStation.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Police station information is required"})
		return
	}

	draft := services.BuildFirDraft(
		request.IncidentDate,
		request.IncidentTime,
		request.IncidentLocation,
		request.IncidentDescription,
		request.AccusedDetails,
		request.Witnesses,
		request.Evidence,
		request.PoliceStation,
	)

	c.JSON(http.StatusOK, gin.H{"firData": draft})
}

// SubmitFir performs the single-shot submission. Failure is a legitimate
// business outcome: the draft comes back unchanged and the user may submit
// again explicitly. On success the lodged FIR is stored durably and mirrored
// for the user's activity feed.
func SubmitFir(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client, submitter services.FirSubmitter) {
	var draft model.FirDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	if draft.IncidentDescription == "" || draft.IncidentLocation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incident description and location are required"})
		return
	}
	if draft.PoliceStation.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Police station information is required"})
		return
	}
	if draft.Status == "" {
		draft.Status = model.FirStatusDraft
	}

	result := submitter.Submit(&draft)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   result.Message,
		})
		return
	}

	record := model.FirRecord{
		IncidentRef:         draft.IncidentID,
		FirNumber:           draft.FirNumber,
		StationName:         draft.PoliceStation.Name,
		StationAddress:      draft.PoliceStation.Address,
		StationPhone:        draft.PoliceStation.Phone,
		IncidentLocation:    draft.IncidentLocation,
		IncidentDescription: draft.IncidentDescription,
		AccusedDetails:      draft.AccusedDetails,
		Witnesses:           draft.Witnesses,
		Evidence:            draft.Evidence,
		Status:              draft.Status,
		SubmittedAt:         *draft.SubmittedAt,
	}
	if err := db.Create(&record).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to store FIR record", "details": err.Error()})
		return
	}

	firDoc := map[string]interface{}{
		"firNumber":   draft.FirNumber,
		"stationName": draft.PoliceStation.Name,
		"status":      draft.Status,
		"submittedAt": draft.SubmittedAt,
	}
	// Firestore document ids cannot contain slashes.
	docID := strings.ReplaceAll(draft.FirNumber, "/", "-")
	if _, err := firestoreClient.Collection("FirRecords").Doc(docID).Set(c, firDoc); err != nil {
		c.JSON(500, gin.H{"error": "Failed to mirror FIR record", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"firNumber": draft.FirNumber,
		"message":   result.Message,
		"firData":   draft,
	})
}
