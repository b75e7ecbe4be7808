// model/token.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type AccessClaims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AccessRefresh struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

type AdminClaims struct {
	AdminID        uint     `json:"adminId"`
	Role           string   `json:"role"`
	OrganizationID string   `json:"organizationId"`
	Permissions    []string `json:"permissions"`
	jwt.RegisteredClaims
}

type TokenResponse struct {
	UserID       int    `firestore:"userId"`
	RefreshToken string `firestore:"refreshToken"`
	CreatedAt    int64  `firestore:"createdAt"`
	Revoked      bool   `firestore:"revoked"`
	ExpiresIn    int64  `firestore:"expiresIn"`
}
