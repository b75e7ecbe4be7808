// model/admin.go
package model

import (
	"strings"
	"time"
)

type Admin struct {
	AdminID          int        `gorm:"column:admin_id;primaryKey;autoIncrement"`
	Username         string     `gorm:"column:username;type:varchar(30);unique;not null"`
	Email            string     `gorm:"column:email;type:varchar(255);unique;not null"`
	HashedPassword   string     `gorm:"column:hashed_password;type:varchar(255);not null"`
	Role             string     `gorm:"column:role;type:enum('hr_admin','ngo_admin','legal_aid_admin');not null"`
	OrganizationName string     `gorm:"column:organization_name;type:varchar(100);not null"`
	OrganizationID   string     `gorm:"column:organization_id;type:varchar(50);unique;not null"`
	OrganizationType string     `gorm:"column:organization_type;type:enum('corporation','ngo','legal_firm');not null"`
	Permissions      string     `gorm:"column:permissions;type:varchar(500);not null"`
	TotpSecret       string     `gorm:"column:totp_secret;type:varchar(100)"`
	SessionTimeout   int        `gorm:"column:session_timeout;default:30;not null"`
	IsActive         string     `gorm:"column:is_active;type:enum('0','1');default:'1';not null"`
	LastLogin        *time.Time `gorm:"column:last_login"`
	CreateAt         time.Time  `gorm:"column:create_at;autoCreateTime"`
	UpdateAt         time.Time  `gorm:"column:update_at;autoUpdateTime"`
}

func (Admin) TableName() string {
	return "admins"
}

// Permissions are stored comma-separated in a single column.
func (a *Admin) PermissionList() []string {
	if a.Permissions == "" {
		return nil
	}
	return strings.Split(a.Permissions, ",")
}

func (a *Admin) HasPermission(permission string) bool {
	for _, p := range a.PermissionList() {
		if p == permission {
			return true
		}
	}
	return false
}

// DefaultPermissions returns the permission set granted to a role at registration.
func DefaultPermissions(role string) []string {
	switch role {
	case "hr_admin":
		return []string{"view_cases", "edit_cases", "forward_cases", "access_evidence", "view_analytics", "export_data"}
	case "ngo_admin":
		return []string{"view_cases", "forward_cases", "access_evidence", "view_analytics"}
	case "legal_aid_admin":
		return []string{"view_cases", "access_evidence"}
	default:
		return nil
	}
}
