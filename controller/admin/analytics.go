package admin

import (
	"net/http"
	"safespace/middleware"
	"safespace/model"
	"safespace/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AnalyticsController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	router.GET("/admin/analytics", middleware.AdminTokenMiddleware(), middleware.PermissionMiddleware("view_analytics"), func(c *gin.Context) {
		CaseAnalytics(c, db, firestoreClient)
	})
}

// CaseAnalytics aggregates the destination tier's caseload by severity,
// status and category. Reporter identities never appear in the aggregates.
func CaseAnalytics(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	adminId := c.MustGet("adminId").(uint)
	orgId, _ := c.MustGet("organizationId").(string)
	destination := roleDestination(adminRole(c))
	if destination == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	type countRow struct {
		Key   string
		Count int64
	}

	countBy := func(column string) (map[string]int64, error) {
		var rows []countRow
		err := db.Model(&model.Incident{}).
			Select(column+" AS `key`, COUNT(*) AS count").
			Where("destination = ? AND status <> ?", destination, "draft").
			Group(column).
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		result := make(map[string]int64)
		for _, row := range rows {
			result[row.Key] = row.Count
		}
		return result, nil
	}

	var total int64
	if err := db.Model(&model.Incident{}).Where("destination = ? AND status <> ?", destination, "draft").Count(&total).Error; err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	bySeverity, err := countBy("severity")
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}
	byStatus, err := countBy("status")
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}
	byCategory, err := countBy("category")
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	if err := services.RecordAudit(db, firestoreClient, services.AuditEntry{
		AdminID:        int(adminId),
		OrganizationID: orgId,
		Action:         "view_analytics",
		ResourceType:   "system",
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		Success:        true,
	}); err != nil {
		c.JSON(500, gin.H{"error": "Failed to record audit log", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"total":      total,
		"bySeverity": bySeverity,
		"byStatus":   byStatus,
		"byCategory": byCategory,
	})
}
