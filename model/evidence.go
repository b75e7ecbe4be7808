// model/evidence.go
package model

import (
	"time"
)

type Evidence struct {
	EvidenceID   int       `gorm:"column:evidence_id;primaryKey;autoIncrement"`
	UserID       int       `gorm:"column:user_id;not null"`
	IncidentID   int       `gorm:"column:incident_id;not null"`
	FileName     string    `gorm:"column:file_name;type:varchar(255);not null"`
	OriginalName string    `gorm:"column:original_name;type:varchar(255);not null"`
	FileType     string    `gorm:"column:file_type;type:enum('image','audio','video','document','other');not null"`
	MimeType     string    `gorm:"column:mime_type;type:varchar(100);not null"`
	FileSize     int64     `gorm:"column:file_size;not null"`
	FilePath     string    `gorm:"column:file_path;type:varchar(500);not null"`
	Description  string    `gorm:"column:description;type:varchar(1000)"`
	Hash         string    `gorm:"column:hash;type:varchar(64);not null"`
	CreateAt     time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	User     User     `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE"`
	Incident Incident `gorm:"foreignKey:IncidentID;references:IncidentID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Evidence) TableName() string {
	return "evidence"
}
