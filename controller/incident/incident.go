package incident

import (
	"safespace/middleware"
	"safespace/model"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func IncidentController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/incidents", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListIncidents(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetIncident(c, db)
		})
		routes.GET("/stats", func(c *gin.Context) {
			IncidentStats(c, db)
		})
	}
}

func incidentSummary(incident model.Incident) gin.H {
	return gin.H{
		"id":                incident.IncidentID,
		"title":             incident.Title,
		"description":       incident.Description,
		"location":          incident.Location,
		"witnesses":         incident.Witnesses,
		"severity":          incident.Severity,
		"assessedSeverity":  incident.AssessedSeverity,
		"category":          incident.Category,
		"destination":       incident.Destination,
		"organizationName":  incident.OrganizationName,
		"status":            incident.Status,
		"createdAt":         incident.CreateAt,
		"updatedAt":         incident.UpdateAt,
	}
}

func ListIncidents(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := db.Where("user_id = ?", userId)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if severity := c.Query("severity"); severity != "" {
		query = query.Where("severity = ?", severity)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Model(&model.Incident{}).Count(&total).Error; err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	var incidents []model.Incident
	if err := query.Order("create_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&incidents).Error; err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	var incidentList []gin.H
	for _, incident := range incidents {
		incidentList = append(incidentList, incidentSummary(incident))
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	c.JSON(200, gin.H{
		"incidents": incidentList,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

func GetIncident(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	incidentId := c.Param("id")

	var incident model.Incident
	if err := db.Where("incident_id = ? AND user_id = ?", incidentId, userId).First(&incident).Error; err != nil {
		c.JSON(404, gin.H{"error": "Incident not found"})
		return
	}

	c.JSON(200, gin.H{"incident": incidentSummary(incident)})
}

func IncidentStats(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	type countRow struct {
		Key   string
		Count int64
	}

	var total int64
	if err := db.Model(&model.Incident{}).Where("user_id = ?", userId).Count(&total).Error; err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	countBy := func(column string) (map[string]int64, error) {
		var rows []countRow
		err := db.Model(&model.Incident{}).
			Select(column+" AS `key`, COUNT(*) AS count").
			Where("user_id = ?", userId).
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

	c.JSON(200, gin.H{
		"total":      total,
		"bySeverity": bySeverity,
		"byStatus":   byStatus,
		"byCategory": byCategory,
	})
}
