// model/case_access.go
package model

import (
	"strings"
	"time"
)

// CaseAccess is a bounded grant giving an admin visibility into a forwarded case.
// Grants expire; the scheduler deactivates them once ExpiresAt has passed.
type CaseAccess struct {
	AccessID       int        `gorm:"column:access_id;primaryKey;autoIncrement"`
	CaseID         int        `gorm:"column:case_id;not null"`
	AdminID        int        `gorm:"column:admin_id;not null"`
	OrganizationID string     `gorm:"column:organization_id;type:varchar(50);not null"`
	AccessType     string     `gorm:"column:access_type;type:enum('direct','forwarded','consent_given');not null"`
	Permissions    string     `gorm:"column:permissions;type:varchar(200);not null"`
	GrantedAt      time.Time  `gorm:"column:granted_at;autoCreateTime"`
	ExpiresAt      time.Time  `gorm:"column:expires_at;not null"`
	IsActive       string     `gorm:"column:is_active;type:enum('0','1');default:'1';not null"`
	LastAccessedAt *time.Time `gorm:"column:last_accessed_at"`
	AccessCount    int        `gorm:"column:access_count;default:0;not null"`
	Notes          string     `gorm:"column:notes;type:varchar(500)"`

	// Relations
	Case  Incident `gorm:"foreignKey:CaseID;references:IncidentID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Admin Admin    `gorm:"foreignKey:AdminID;references:AdminID;constraint:OnUpdate:CASCADE"`
}

func (CaseAccess) TableName() string {
	return "case_access"
}

func (ca *CaseAccess) IsValid() bool {
	return ca.IsActive == "1" && time.Now().Before(ca.ExpiresAt)
}

// Grant permissions are stored comma-separated, like Admin.Permissions.
func (ca *CaseAccess) HasPermission(permission string) bool {
	for _, p := range strings.Split(ca.Permissions, ",") {
		if p == permission {
			return true
		}
	}
	return false
}
