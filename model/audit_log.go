// model/audit_log.go
package model

import (
	"time"
)

type AuditLog struct {
	LogID          int       `gorm:"column:log_id;primaryKey;autoIncrement"`
	AdminID        int       `gorm:"column:admin_id;not null"`
	OrganizationID string    `gorm:"column:organization_id;type:varchar(50);not null"`
	Action         string    `gorm:"column:action;type:enum('login','logout','admin_created','view_case','edit_case','forward_case','access_evidence','export_data','view_analytics','grant_access','revoke_access','update_settings');not null"`
	ResourceType   string    `gorm:"column:resource_type;type:enum('case','evidence','user','admin','system');not null"`
	ResourceID     int       `gorm:"column:resource_id"`
	Details        string    `gorm:"column:details;type:text"`
	IPAddress      string    `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent      string    `gorm:"column:user_agent;type:varchar(500)"`
	Success        string    `gorm:"column:success;type:enum('0','1');default:'1';not null"`
	ErrorMessage   string    `gorm:"column:error_message;type:varchar(500)"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	Admin Admin `gorm:"foreignKey:AdminID;references:AdminID;constraint:OnUpdate:CASCADE"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
