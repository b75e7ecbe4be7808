package admin

import (
	"safespace/middleware"
	"safespace/model"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuditLogController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	router.GET("/admin/audit-logs", middleware.AdminTokenMiddleware(), func(c *gin.Context) {
		ListAuditLogs(c, db)
	})
}

// ListAuditLogs returns the organization's audit trail, newest first. Every
// admin can inspect their own organization's trail; there is no cross-org
// visibility.
func ListAuditLogs(c *gin.Context, db *gorm.DB) {
	orgId, _ := c.MustGet("organizationId").(string)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 500 {
		limit = 100
	}

	query := db.Preload("Admin").Where("organization_id = ?", orgId)
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var logs []model.AuditLog
	if err := query.Order("create_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	var logList []gin.H
	for _, entry := range logs {
		logList = append(logList, gin.H{
			"id":           entry.LogID,
			"adminId":      entry.AdminID,
			"adminName":    entry.Admin.Username,
			"action":       entry.Action,
			"resourceType": entry.ResourceType,
			"resourceId":   entry.ResourceID,
			"details":      entry.Details,
			"ipAddress":    entry.IPAddress,
			"success":      entry.Success == "1",
			"timestamp":    entry.CreateAt,
		})
	}

	c.JSON(200, gin.H{"auditLogs": logList})
}
