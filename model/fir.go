// model/fir.go
package model

import (
	"time"
)

const (
	FirStatusDraft     = "draft"
	FirStatusSubmitted = "submitted"
	// FirStatusApproved is reachable in the data model but no component produces
	// it yet; reserved for a manual-review step.
	FirStatusApproved = "approved"
	FirStatusLodged   = "lodged"
)

// FirDraft is the escalation artifact assembled from an incident and the
// nearest station. The station is a snapshot taken at draft time and is never
// re-resolved. FirNumber is set if and only if Status is "lodged".
type FirDraft struct {
	IncidentID          string        `json:"incidentId"`
	ComplainantName     string        `json:"complainantName"`
	ComplainantAddress  string        `json:"complainantAddress"`
	ComplainantPhone    string        `json:"complainantPhone"`
	IncidentDate        string        `json:"incidentDate"`
	IncidentTime        string        `json:"incidentTime"`
	IncidentLocation    string        `json:"incidentLocation"`
	IncidentDescription string        `json:"incidentDescription"`
	AccusedDetails      string        `json:"accusedDetails"`
	Witnesses           string        `json:"witnesses"`
	Evidence            string        `json:"evidence"`
	PoliceStation       PoliceStation `json:"policeStation"`
	FirNumber           string        `json:"firNumber,omitempty"`
	Status              string        `json:"status"`
	CreatedAt           time.Time     `json:"createdAt"`
	SubmittedAt         *time.Time    `json:"submittedAt,omitempty"`
}

// FirRecord is the durable copy of a successfully lodged FIR.
type FirRecord struct {
	RecordID            int       `gorm:"column:record_id;primaryKey;autoIncrement"`
	IncidentRef         string    `gorm:"column:incident_ref;type:varchar(50);not null"`
	FirNumber           string    `gorm:"column:fir_number;type:varchar(20);unique;not null"`
	StationName         string    `gorm:"column:station_name;type:varchar(100);not null"`
	StationAddress      string    `gorm:"column:station_address;type:varchar(255);not null"`
	StationPhone        string    `gorm:"column:station_phone;type:varchar(20)"`
	IncidentLocation    string    `gorm:"column:incident_location;type:varchar(500);not null"`
	IncidentDescription string    `gorm:"column:incident_description;type:text;not null"`
	AccusedDetails      string    `gorm:"column:accused_details;type:text"`
	Witnesses           string    `gorm:"column:witnesses;type:varchar(1000)"`
	Evidence            string    `gorm:"column:evidence;type:varchar(1000)"`
	Status              string    `gorm:"column:status;type:enum('draft','submitted','approved','lodged');not null"`
	SubmittedAt         time.Time `gorm:"column:submitted_at;not null"`
	CreateAt            time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (FirRecord) TableName() string {
	return "fir_records"
}
