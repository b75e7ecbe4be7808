package admin

import (
	"fmt"
	"net/http"
	"safespace/dto"
	"safespace/middleware"
	"safespace/model"
	"safespace/services"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func CasesController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/admin/cases", middleware.AdminTokenMiddleware())
	{
		routes.GET("", middleware.PermissionMiddleware("view_cases"), func(c *gin.Context) {
			ListCases(c, db, firestoreClient)
		})
		routes.GET("/:id", middleware.PermissionMiddleware("view_cases"), func(c *gin.Context) {
			GetCase(c, db, firestoreClient)
		})
		routes.PUT("/:id/status", middleware.PermissionMiddleware("edit_cases"), func(c *gin.Context) {
			UpdateCaseStatus(c, db, firestoreClient)
		})
		routes.POST("/:id/forward", middleware.PermissionMiddleware("forward_cases"), func(c *gin.Context) {
			ForwardCase(c, db, firestoreClient)
		})
	}
}

func roleDestination(role string) string {
	switch role {
	case "hr_admin":
		return "hr"
	case "ngo_admin":
		return "ngo"
	case "legal_aid_admin":
		return "legal_aid"
	default:
		return ""
	}
}

func adminRole(c *gin.Context) string {
	claims, ok := c.MustGet("claims").(jwt.MapClaims)
	if !ok {
		return ""
	}
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}

// accessibleCase loads a case the admin may see: either one routed to the
// admin's destination tier, or one covered by an unexpired forwarded grant
// that carries grantPermission. Tier admins are scoped by their own token
// permissions; grantees are additionally scoped by what the forwarder granted.
func accessibleCase(c *gin.Context, db *gorm.DB, caseID, grantPermission string) (*model.Incident, bool) {
	adminId := c.MustGet("adminId").(uint)

	var incident model.Incident
	if err := db.Where("incident_id = ? AND status <> ?", caseID, "draft").First(&incident).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return nil, false
	}

	if incident.Destination == roleDestination(adminRole(c)) {
		return &incident, true
	}

	var grant model.CaseAccess
	err := db.Where("case_id = ? AND admin_id = ? AND is_active = ? AND expires_at > ?",
		incident.IncidentID, adminId, "1", time.Now()).First(&grant).Error
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return nil, false
	}
	if !grant.HasPermission(grantPermission) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return nil, false
	}

	now := time.Now()
	db.Model(&grant).Updates(map[string]interface{}{
		"last_accessed_at": now,
		"access_count":     gorm.Expr("access_count + 1"),
	})
	return &incident, true
}

func caseSummary(incident model.Incident) gin.H {
	return gin.H{
		"id":               incident.IncidentID,
		"title":            incident.Title,
		"description":      incident.Description,
		"location":         incident.Location,
		"witnesses":        incident.Witnesses,
		"severity":         incident.Severity,
		"assessedSeverity": incident.AssessedSeverity,
		"category":         incident.Category,
		"destination":      incident.Destination,
		"organizationName": incident.OrganizationName,
		"status":           incident.Status,
		"createdAt":        incident.CreateAt,
		"updatedAt":        incident.UpdateAt,
	}
}

func ListCases(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	adminId := c.MustGet("adminId").(uint)
	destination := roleDestination(adminRole(c))
	if destination == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	// Cases routed to this tier, except reporter-side drafts.
	query := db.Where("destination = ? AND status <> ?", destination, "draft")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if severity := c.Query("severity"); severity != "" {
		query = query.Where("severity = ?", severity)
	}

	var cases []model.Incident
	if err := query.Order("create_at DESC").Find(&cases).Error; err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	// Forwarded cases arrive through unexpired grants.
	var grants []model.CaseAccess
	if err := db.Preload("Case").Where("admin_id = ? AND is_active = ? AND expires_at > ?",
		adminId, "1", time.Now()).Find(&grants).Error; err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	seen := make(map[int]bool)
	var caseList []gin.H
	for _, incident := range cases {
		seen[incident.IncidentID] = true
		caseList = append(caseList, caseSummary(incident))
	}
	for _, grant := range grants {
		if !grant.HasPermission("view") {
			continue
		}
		if !seen[grant.Case.IncidentID] {
			seen[grant.Case.IncidentID] = true
			entry := caseSummary(grant.Case)
			entry["forwarded"] = true
			entry["accessExpiresAt"] = grant.ExpiresAt
			caseList = append(caseList, entry)
		}
	}

	c.JSON(200, gin.H{"cases": caseList})
}

func GetCase(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	adminId := c.MustGet("adminId").(uint)
	orgId, _ := c.MustGet("organizationId").(string)

	incident, ok := accessibleCase(c, db, c.Param("id"), "view")
	if !ok {
		return
	}

	if err := services.RecordAudit(db, firestoreClient, services.AuditEntry{
		AdminID:        int(adminId),
		OrganizationID: orgId,
		Action:         "view_case",
		ResourceType:   "case",
		ResourceID:     incident.IncidentID,
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		Success:        true,
	}); err != nil {
		c.JSON(500, gin.H{"error": "Failed to record audit log", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"case": caseSummary(*incident)})
}

func UpdateCaseStatus(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	adminId := c.MustGet("adminId").(uint)
	orgId, _ := c.MustGet("organizationId").(string)

	var request dto.UpdateCaseStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	incident, ok := accessibleCase(c, db, c.Param("id"), "edit")
	if !ok {
		return
	}

	if !model.ValidIncidentTransition(incident.Status, request.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid status transition from %s to %s", incident.Status, request.Status),
		})
		return
	}

	if err := db.Model(incident).Update("status", request.Status).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update case status", "details": err.Error()})
		return
	}

	docRef := firestoreClient.Collection("Incidents").Doc(incident.Destination).Collection("cases").Doc(fmt.Sprintf("incident_%d", incident.IncidentID))
	if _, err := docRef.Update(c, []firestore.Update{{Path: "Status", Value: request.Status}}); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update Firestore document", "details": err.Error()})
		return
	}

	if err := services.RecordAudit(db, firestoreClient, services.AuditEntry{
		AdminID:        int(adminId),
		OrganizationID: orgId,
		Action:         "edit_case",
		ResourceType:   "case",
		ResourceID:     incident.IncidentID,
		Details:        "status -> " + request.Status,
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		Success:        true,
	}); err != nil {
		c.JSON(500, gin.H{"error": "Failed to record audit log", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Case status updated successfully", "status": request.Status})
}

// ForwardCase grants another admin bounded access to a case. The grant
// expires on its own; the scheduler also sweeps expired grants inactive.
func ForwardCase(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	adminId := c.MustGet("adminId").(uint)
	orgId, _ := c.MustGet("organizationId").(string)

	var request dto.ForwardCaseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	incident, ok := accessibleCase(c, db, c.Param("id"), "forward")
	if !ok {
		return
	}

	var target model.Admin
	if err := db.Where("admin_id = ? AND is_active = ?", request.AdminID, "1").First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target admin not found"})
		return
	}
	if target.AdminID == int(adminId) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot forward a case to yourself"})
		return
	}

	for _, p := range request.Permissions {
		switch p {
		case "view", "edit", "forward", "access_evidence":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid grant permission: " + p})
			return
		}
	}

	expiresIn := request.ExpiresIn
	if expiresIn <= 0 || expiresIn > 720 {
		expiresIn = 72
	}

	grant := model.CaseAccess{
		CaseID:         incident.IncidentID,
		AdminID:        target.AdminID,
		OrganizationID: target.OrganizationID,
		AccessType:     "forwarded",
		Permissions:    strings.Join(request.Permissions, ","),
		ExpiresAt:      time.Now().Add(time.Duration(expiresIn) * time.Hour),
		Notes:          request.Notes,
	}
	if err := db.Create(&grant).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create access grant", "details": err.Error()})
		return
	}

	if err := services.RecordAudit(db, firestoreClient, services.AuditEntry{
		AdminID:        int(adminId),
		OrganizationID: orgId,
		Action:         "forward_case",
		ResourceType:   "case",
		ResourceID:     incident.IncidentID,
		Details:        "forwarded to admin " + strconv.Itoa(target.AdminID),
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		Success:        true,
	}); err != nil {
		c.JSON(500, gin.H{"error": "Failed to record audit log", "details": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"message":   "Case forwarded successfully",
		"accessId":  grant.AccessID,
		"expiresAt": grant.ExpiresAt,
	})
}
