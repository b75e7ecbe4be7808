// model/incident.go
package model

import (
	"time"
)

type Incident struct {
	IncidentID       int       `gorm:"column:incident_id;primaryKey;autoIncrement"`
	UserID           int       `gorm:"column:user_id;not null"`
	Title            string    `gorm:"column:title;type:varchar(200);not null"`
	Description      string    `gorm:"column:description;type:text;not null"`
	Location         string    `gorm:"column:location;type:varchar(500)"`
	Witnesses        string    `gorm:"column:witnesses;type:varchar(1000)"`
	Severity         string    `gorm:"column:severity;type:enum('low','medium','high','critical');default:'medium';not null"`
	AssessedSeverity string    `gorm:"column:assessed_severity;type:enum('low','medium','high','critical')"`
	Category         string    `gorm:"column:category;type:enum('verbal_harassment','physical_harassment','sexual_harassment','discrimination','bullying','retaliation','other');default:'other';not null"`
	Destination      string    `gorm:"column:destination;type:enum('hr','ngo','legal_aid');not null"`
	OrganizationName string    `gorm:"column:organization_name;type:varchar(100)"`
	Status           string    `gorm:"column:status;type:enum('draft','submitted','under_review','resolved','closed');default:'draft';not null"`
	CreateAt         time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdateAt         time.Time `gorm:"column:update_at;autoUpdateTime"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (Incident) TableName() string {
	return "incidents"
}

// Forward-only incident lifecycle. Each status may move only to a later one.
var incidentStatusOrder = map[string]int{
	"draft":        0,
	"submitted":    1,
	"under_review": 2,
	"resolved":     3,
	"closed":       4,
}

func ValidIncidentTransition(from, to string) bool {
	f, ok1 := incidentStatusOrder[from]
	t, ok2 := incidentStatusOrder[to]
	return ok1 && ok2 && t > f
}
