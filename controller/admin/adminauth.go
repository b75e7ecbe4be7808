package admin

import (
	"net/http"
	"os"
	"safespace/dto"
	"safespace/model"
	"safespace/services"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AdminAuthController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/admin/auth")
	{
		routes.POST("/register", func(c *gin.Context) {
			RegisterAdmin(c, db, firestoreClient)
		})
		routes.POST("/login", func(c *gin.Context) {
			LoginAdmin(c, db, firestoreClient)
		})
	}
}

// CreateAdminToken mints an admin access token. The organization id and the
// permission set ride in the claims so route middleware can authorize without
// a database lookup. Expiry honors the admin's configured session timeout.
func CreateAdminToken(admin *model.Admin) (string, error) {
	secret := []byte(os.Getenv("JWT_ADMIN_SECRET_KEY"))
	timeout := admin.SessionTimeout
	if timeout <= 0 {
		timeout = 30
	}
	claims := &model.AdminClaims{
		AdminID:        uint(admin.AdminID),
		Role:           admin.Role,
		OrganizationID: admin.OrganizationID,
		Permissions:    admin.PermissionList(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "safespace",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(timeout) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func RegisterAdmin(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	var request dto.AdminRegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	var existing model.Admin
	if err := db.Where("username = ? OR email = ? OR organization_id = ?",
		request.Username, request.Email, request.OrganizationID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin account or organization already exists"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(500, gin.H{"error": "Database error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := model.Admin{
		Username:         request.Username,
		Email:            request.Email,
		HashedPassword:   string(hashedPassword),
		Role:             request.Role,
		OrganizationName: request.OrganizationName,
		OrganizationID:   request.OrganizationID,
		OrganizationType: request.OrganizationType,
		Permissions:      strings.Join(model.DefaultPermissions(request.Role), ","),
	}
	if err := db.Create(&admin).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create admin", "details": err.Error()})
		return
	}

	if err := services.RecordAudit(db, firestoreClient, services.AuditEntry{
		AdminID:        admin.AdminID,
		OrganizationID: admin.OrganizationID,
		Action:         "admin_created",
		ResourceType:   "admin",
		ResourceID:     admin.AdminID,
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		Success:        true,
	}); err != nil {
		c.JSON(500, gin.H{"error": "Failed to record audit log", "details": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"message": "Admin registered successfully",
		"admin": gin.H{
			"adminId":      admin.AdminID,
			"username":     admin.Username,
			"role":         admin.Role,
			"organization": admin.OrganizationName,
			"permissions":  admin.PermissionList(),
		},
	})
}

func LoginAdmin(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	var request dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin model.Admin
	result := db.Where("username = ?", request.Username).First(&admin)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(500, gin.H{"error": "Database error"})
		return
	}
	if admin.IsActive != "1" {
		c.JSON(403, gin.H{"error": "Account is disabled"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(request.Password)); err != nil {
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}

	// Admins who completed TOTP enrolment must present a valid code.
	// A secret still carrying the pending marker is not enforced yet.
	if admin.TotpSecret != "" && !strings.HasPrefix(admin.TotpSecret, "pending:") {
		if request.TotpCode == "" {
			c.JSON(401, gin.H{"error": "TOTP code is required"})
			return
		}
		if !totp.Validate(request.TotpCode, admin.TotpSecret) {
			c.JSON(401, gin.H{"error": "Invalid TOTP code"})
			return
		}
	}

	token, err := CreateAdminToken(&admin)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create token"})
		return
	}

	now := time.Now()
	if err := db.Model(&admin).Update("last_login", now).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update last login"})
		return
	}

	if err := services.RecordAudit(db, firestoreClient, services.AuditEntry{
		AdminID:        admin.AdminID,
		OrganizationID: admin.OrganizationID,
		Action:         "login",
		ResourceType:   "admin",
		ResourceID:     admin.AdminID,
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		Success:        true,
	}); err != nil {
		c.JSON(500, gin.H{"error": "Failed to record audit log", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"message": "Login Successfully",
		"token":   token,
		"admin": gin.H{
			"adminId":      admin.AdminID,
			"username":     admin.Username,
			"role":         admin.Role,
			"organization": admin.OrganizationName,
			"permissions":  admin.PermissionList(),
		},
	})
}
