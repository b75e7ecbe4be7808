package auth

import (
	"crypto/sha256"
	"os"
	"safespace/dto"
	"safespace/middleware"
	"safespace/model"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AuthController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/auth")
	{
		routes.POST("/register", func(c *gin.Context) {
			Register(c, db, firestoreClient)
		})
		routes.POST("/login", func(c *gin.Context) {
			Login(c, db, firestoreClient)
		})
		routes.POST("/logout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			Logout(c, db, firestoreClient)
		})
		routes.POST("/newaccesstoken", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
			NewAccessToken(c, db, firestoreClient)
		})
		routes.GET("/profile", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			Profile(c, db)
		})
		routes.PUT("/profile", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			UpdateProfile(c, db)
		})
		routes.GET("/check-username/:username", func(c *gin.Context) {
			CheckUsername(c, db)
		})
	}
}

func CreateAccessToken(userID uint, role string) (string, error) {
	hmacSampleSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.AccessClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "safespace",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(hmacSampleSecret)
}

func CreateRefreshToken(userID uint) (string, error) {
	refreshTokenSecret := []byte(os.Getenv("JWT_REFRESH_SECRET_KEY"))
	claims := &model.AccessRefresh{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "safespace",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(refreshTokenSecret)
}

func HashRefreshToken(token string) (string, error) {
	// SHA-256 first so the bcrypt input has a fixed 32-byte length.
	hash := sha256.Sum256([]byte(token))
	hashedToken, err := bcrypt.GenerateFromPassword(hash[:], bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedToken), nil
}

func validLanguage(language string) bool {
	switch language {
	case "english", "hindi", "marathi", "tamil":
		return true
	}
	return false
}

// Register creates an anonymous account. Only a username and password are
// collected; the platform never stores an email or phone number for reporters.
func Register(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	language := request.Language
	if language == "" {
		language = "english"
	}
	if !validLanguage(language) {
		c.JSON(400, gin.H{"error": "Invalid language"})
		return
	}

	var existing model.User
	if err := db.Where("username = ?", request.Username).First(&existing).Error; err == nil {
		c.JSON(400, gin.H{"error": "Username already exists"})
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

	user := model.User{
		Username:       request.Username,
		HashedPassword: string(hashedPassword),
		Language:       language,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create user", "details": err.Error()})
		return
	}

	accessToken, err := CreateAccessToken(uint(user.UserID), "user")
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create token"})
		return
	}
	refreshToken, err := CreateRefreshToken(uint(user.UserID))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create token"})
		return
	}

	if err := storeRefreshToken(c, firestoreClient, user.UserID, refreshToken); err != nil {
		c.JSON(500, gin.H{"error": "Failed to store refresh token in Firestore"})
		return
	}

	c.JSON(201, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"userId":   user.UserID,
			"username": user.Username,
			"language": user.Language,
		},
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}

func storeRefreshToken(c *gin.Context, firestoreClient *firestore.Client, userID int, refreshToken string) error {
	hashedRefreshToken, err := HashRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	refreshTokenData := model.TokenResponse{
		UserID:       userID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    time.Now().Unix(),
		Revoked:      false,
		ExpiresIn:    int64((7 * 24 * time.Hour).Seconds()),
	}
	_, err = firestoreClient.Collection("refreshTokens").Doc(strconv.Itoa(userID)).Set(c, refreshTokenData)
	return err
}

func Login(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	var user model.User
	result := db.Where("username = ?", request.Username).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(500, gin.H{"error": "Database error"})
		return
	}

	if user.IsActive != "1" {
		c.JSON(403, gin.H{"error": "Account is disabled"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)); err != nil {
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, err := CreateAccessToken(uint(user.UserID), "user")
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create token"})
		return
	}
	refreshToken, err := CreateRefreshToken(uint(user.UserID))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create token"})
		return
	}

	if err := storeRefreshToken(c, firestoreClient, user.UserID, refreshToken); err != nil {
		c.JSON(500, gin.H{"error": "Failed to store refresh token in Firestore"})
		return
	}

	now := time.Now()
	if err := db.Model(&user).Update("last_login", now).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update last login"})
		return
	}

	c.JSON(200, gin.H{
		"message": "Login Successfully",
		"user": gin.H{
			"userId":   user.UserID,
			"username": user.Username,
			"language": user.Language,
		},
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}

func Logout(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)

	_, err := firestoreClient.Collection("refreshTokens").Doc(strconv.Itoa(int(userId))).Update(c, []firestore.Update{
		{Path: "revoked", Value: true},
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to revoke refresh token"})
		return
	}

	c.JSON(200, gin.H{"message": "Logout successful"})
}

func NewAccessToken(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userID := c.MustGet("userID").(uint)

	doc, err := firestoreClient.Collection("refreshTokens").Doc(strconv.Itoa(int(userID))).Get(c)
	if err != nil {
		c.JSON(401, gin.H{"error": "Refresh token not found"})
		return
	}

	var stored model.TokenResponse
	if err := doc.DataTo(&stored); err != nil {
		c.JSON(500, gin.H{"error": "Failed to read refresh token record"})
		return
	}
	if stored.Revoked {
		c.JSON(401, gin.H{"error": "Refresh token has been revoked"})
		return
	}

	refreshToken := c.MustGet("refreshToken").(string)
	hash := sha256.Sum256([]byte(refreshToken))
	if err := bcrypt.CompareHashAndPassword([]byte(stored.RefreshToken), hash[:]); err != nil {
		c.JSON(401, gin.H{"error": "Refresh token mismatch"})
		return
	}

	accessToken, err := CreateAccessToken(userID, "user")
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(200, gin.H{"accessToken": accessToken})
}

func Profile(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var user model.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	c.JSON(200, gin.H{
		"user": gin.H{
			"userId":    user.UserID,
			"username":  user.Username,
			"language":  user.Language,
			"lastLogin": user.LastLogin,
			"createdAt": user.CreateAt,
		},
	})
}

func UpdateProfile(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var request dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}
	if !validLanguage(request.Language) {
		c.JSON(400, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := db.Model(&model.User{}).Where("user_id = ?", userId).Update("language", request.Language).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(200, gin.H{"message": "Profile updated successfully"})
}

func CheckUsername(c *gin.Context, db *gorm.DB) {
	username := c.Param("username")
	if len(username) < 3 {
		c.JSON(400, gin.H{"error": "Username must be at least 3 characters"})
		return
	}

	var user model.User
	err := db.Where("username = ?", username).First(&user).Error
	isAvailable := err == gorm.ErrRecordNotFound

	message := "Username is available"
	if !isAvailable {
		message = "Username is already taken"
	}

	c.JSON(200, gin.H{
		"username":    username,
		"isAvailable": isAvailable,
		"message":     message,
	})
}
