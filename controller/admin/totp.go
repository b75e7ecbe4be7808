package admin

import (
	"net/http"
	"safespace/dto"
	"safespace/middleware"
	"safespace/model"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
	"gorm.io/gorm"
)

func TotpController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/admin/auth/totp", middleware.AdminTokenMiddleware())
	{
		routes.POST("/setup", func(c *gin.Context) {
			SetupTotp(c, db)
		})
		routes.POST("/verify", func(c *gin.Context) {
			VerifyTotp(c, db)
		})
	}
}

// SetupTotp generates a new TOTP secret for the admin. The secret only takes
// effect after a successful verify call, so a lost enrolment QR cannot lock
// the account out.
func SetupTotp(c *gin.Context, db *gorm.DB) {
	adminId := c.MustGet("adminId").(uint)

	var admin model.Admin
	if err := db.Where("admin_id = ?", adminId).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	if admin.TotpSecret != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TOTP is already enabled"})
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "safespace",
		AccountName: admin.Username,
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate TOTP secret"})
		return
	}

	// Stored with a pending marker; login ignores it until verified.
	if err := db.Model(&admin).Update("totp_secret", "pending:"+key.Secret()).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to store TOTP secret"})
		return
	}

	c.JSON(200, gin.H{
		"secret": key.Secret(),
		"url":    key.URL(),
	})
}

func VerifyTotp(c *gin.Context, db *gorm.DB) {
	adminId := c.MustGet("adminId").(uint)

	var request dto.TotpVerifyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	var admin model.Admin
	if err := db.Where("admin_id = ?", adminId).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}

	secret := admin.TotpSecret
	pending := false
	if len(secret) > 8 && secret[:8] == "pending:" {
		secret = secret[8:]
		pending = true
	}
	if secret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TOTP setup has not been started"})
		return
	}

	if !totp.Validate(request.Code, secret) {
		c.JSON(401, gin.H{"error": "Invalid TOTP code"})
		return
	}

	if pending {
		if err := db.Model(&admin).Update("totp_secret", secret).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to enable TOTP"})
			return
		}
	}

	c.JSON(200, gin.H{"message": "TOTP enabled for admin " + strconv.Itoa(admin.AdminID)})
}
