package services

import (
	"testing"
	"time"

	"safespace/model"

	"github.com/stretchr/testify/assert"
)

func testIncident() *model.Incident {
	return &model.Incident{
		IncidentID:  1,
		Title:       "Repeated comments in meetings",
		Description: "A colleague keeps making inappropriate comments during standups.",
		Location:    "Conference room B",
		Witnesses:   "Two teammates",
		Severity:    "high",
		Category:    "verbal_harassment",
		Status:      "submitted",
		CreateAt:    time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestGeneratePoshComplaint(t *testing.T) {
	doc := GeneratePoshComplaint(testIncident())

	assert.Equal(t, "Formal Complaint Under POSH Act, 2013", doc.Title)
	assert.Contains(t, doc.Content, "POSH Act")
	assert.Contains(t, doc.Content, "verbal harassment")
	assert.Contains(t, doc.Content, "serious")
	assert.Contains(t, doc.Content, "15/08/2026")
	assert.Contains(t, doc.Content, "Conference room B")
	assert.Contains(t, doc.Content, "Two teammates")
}

func TestGeneratePoshComplaintDefaults(t *testing.T) {
	incident := testIncident()
	incident.Category = "unknown_category"
	incident.Location = ""
	incident.Witnesses = ""

	doc := GeneratePoshComplaint(incident)
	assert.Contains(t, doc.Content, "inappropriate behavior")
	assert.Contains(t, doc.Content, "the workplace")
	assert.Contains(t, doc.Content, "No witnesses were present")
}

func TestGenerateIncidentSummary(t *testing.T) {
	doc := GenerateIncidentSummary(testIncident())

	assert.Equal(t, "Incident Summary Report", doc.Title)
	assert.Contains(t, doc.Content, "Repeated comments in meetings")
	assert.Contains(t, doc.Content, "**Severity:** high")
	assert.Contains(t, doc.Content, "**Status:** submitted")
}

func TestGenerateLegalAdvice(t *testing.T) {
	doc := GenerateLegalAdvice(testIncident())

	assert.Equal(t, "Legal Advice and Next Steps", doc.Title)
	assert.Contains(t, doc.Content, "Internal Complaints Committee")
	assert.Contains(t, doc.Content, "3 months")
}
