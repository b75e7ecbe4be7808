package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"safespace/middleware"
	"safespace/model"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxEvidenceSize = 10 << 20 // 10MB

func EvidenceController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/evidence", middleware.AccessTokenMiddleware())
	{
		routes.POST("/upload", func(c *gin.Context) {
			UploadEvidence(c, db, firestoreClient)
		})
		routes.GET("/incident/:incidentid", func(c *gin.Context) {
			ListEvidence(c, db)
		})
		routes.DELETE("/delete/:id", func(c *gin.Context) {
			DeleteEvidence(c, db, firestoreClient)
		})
	}
}

func fileTypeBucket(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case mimeType == "application/pdf", strings.HasPrefix(mimeType, "text/"),
		strings.Contains(mimeType, "document"), strings.Contains(mimeType, "msword"):
		return "document"
	default:
		return "other"
	}
}

func uploadDir() string {
	dir := os.Getenv("EVIDENCE_UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func UploadEvidence(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)

	incidentId := c.PostForm("incident_id")
	if incidentId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incident ID is required"})
		return
	}

	var incident model.Incident
	if err := db.Where("incident_id = ? AND user_id = ?", incidentId, userId).First(&incident).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Evidence file is required"})
		return
	}
	if fileHeader.Size > maxEvidenceSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}
	defer src.Close()

	if err := os.MkdirAll(uploadDir(), 0o750); err != nil {
		c.JSON(500, gin.H{"error": "Failed to prepare storage", "details": err.Error()})
		return
	}

	storedName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	storedPath := filepath.Join(uploadDir(), storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to store file", "details": err.Error()})
		return
	}
	defer dst.Close()

	// Hash while copying so the integrity digest matches what hit the disk.
	hasher := sha256.New()
	if _, err := io.Copy(io.MultiWriter(dst, hasher), src); err != nil {
		os.Remove(storedPath)
		c.JSON(500, gin.H{"error": "Failed to store file", "details": err.Error()})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	evidence := model.Evidence{
		UserID:       int(userId),
		IncidentID:   incident.IncidentID,
		FileName:     storedName,
		OriginalName: fileHeader.Filename,
		FileType:     fileTypeBucket(mimeType),
		MimeType:     mimeType,
		FileSize:     fileHeader.Size,
		FilePath:     storedPath,
		Description:  c.PostForm("description"),
		Hash:         hex.EncodeToString(hasher.Sum(nil)),
	}

	if err := db.Create(&evidence).Error; err != nil {
		os.Remove(storedPath)
		c.JSON(500, gin.H{"error": "Failed to save evidence", "details": err.Error()})
		return
	}

	evidenceDoc := map[string]interface{}{
		"EvidenceID": evidence.EvidenceID,
		"IncidentID": evidence.IncidentID,
		"FileType":   evidence.FileType,
		"FileSize":   evidence.FileSize,
		"Hash":       evidence.Hash,
		"CreateAt":   evidence.CreateAt,
	}
	docRef := firestoreClient.Collection("Evidence").Doc(fmt.Sprintf("incident_%d", incident.IncidentID)).Collection("files").Doc(fmt.Sprintf("evidence_%d", evidence.EvidenceID))
	if _, err := docRef.Set(c, evidenceDoc); err != nil {
		c.JSON(500, gin.H{"error": "Failed to save evidence to Firestore", "details": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"message": "Evidence uploaded successfully",
		"evidence": gin.H{
			"id":           evidence.EvidenceID,
			"incidentId":   evidence.IncidentID,
			"originalName": evidence.OriginalName,
			"fileType":     evidence.FileType,
			"fileSize":     evidence.FileSize,
			"hash":         evidence.Hash,
		},
	})
}

func ListEvidence(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	incidentId := c.Param("incidentid")

	var incident model.Incident
	if err := db.Where("incident_id = ? AND user_id = ?", incidentId, userId).First(&incident).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		return
	}

	var files []model.Evidence
	if err := db.Where("incident_id = ?", incident.IncidentID).Order("create_at DESC").Find(&files).Error; err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	var fileList []gin.H
	for _, file := range files {
		fileList = append(fileList, gin.H{
			"id":           file.EvidenceID,
			"originalName": file.OriginalName,
			"fileType":     file.FileType,
			"mimeType":     file.MimeType,
			"fileSize":     file.FileSize,
			"description":  file.Description,
			"hash":         file.Hash,
			"createdAt":    file.CreateAt,
		})
	}

	c.JSON(200, gin.H{"evidence": fileList})
}

func DeleteEvidence(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	evidenceId := c.Param("id")

	var evidence model.Evidence
	if err := db.Where("evidence_id = ? AND user_id = ?", evidenceId, userId).First(&evidence).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evidence not found"})
		return
	}

	if err := db.Delete(&evidence).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete evidence", "details": err.Error()})
		return
	}

	if err := os.Remove(evidence.FilePath); err != nil && !os.IsNotExist(err) {
		c.JSON(500, gin.H{"error": "Failed to remove stored file", "details": err.Error()})
		return
	}

	docRef := firestoreClient.Collection("Evidence").Doc(fmt.Sprintf("incident_%d", evidence.IncidentID)).Collection("files").Doc(fmt.Sprintf("evidence_%d", evidence.EvidenceID))
	if _, err := docRef.Delete(c); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete evidence from Firestore", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Evidence deleted successfully"})
}
