package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"safespace/model"

	"cloud.google.com/go/firestore"
	"gorm.io/gorm"
)

type AuditEntry struct {
	AdminID        int
	OrganizationID string
	Action         string
	ResourceType   string
	ResourceID     int
	Details        string
	IPAddress      string
	UserAgent      string
	Success        bool
	ErrorMessage   string
}

// RecordAudit writes the audit trail row and mirrors it into Firestore so the
// admin dashboard can stream recent activity. The mirror is best-effort: a
// Firestore failure is logged but never fails the audited operation.
func RecordAudit(db *gorm.DB, firestoreClient *firestore.Client, entry AuditEntry) error {
	success := "1"
	if !entry.Success {
		success = "0"
	}
	row := model.AuditLog{
		AdminID:        entry.AdminID,
		OrganizationID: entry.OrganizationID,
		Action:         entry.Action,
		ResourceType:   entry.ResourceType,
		ResourceID:     entry.ResourceID,
		Details:        entry.Details,
		IPAddress:      entry.IPAddress,
		UserAgent:      entry.UserAgent,
		Success:        success,
		ErrorMessage:   entry.ErrorMessage,
	}
	if err := db.Create(&row).Error; err != nil {
		return err
	}

	if firestoreClient != nil {
		ctx := context.Background()
		doc := map[string]interface{}{
			"adminId":        entry.AdminID,
			"organizationId": entry.OrganizationID,
			"action":         entry.Action,
			"resourceType":   entry.ResourceType,
			"resourceId":     entry.ResourceID,
			"success":        entry.Success,
			"timestamp":      time.Now(),
		}
		docID := "log_" + strconv.Itoa(row.LogID)
		if _, err := firestoreClient.Collection("AuditLogs").Doc(entry.OrganizationID).Collection("entries").Doc(docID).Set(ctx, doc); err != nil {
			log.Printf("Failed to mirror audit log to Firestore: %v", err)
		}
	}
	return nil
}
