package services

import (
	"fmt"
	"time"

	"safespace/model"
)

type GeneratedDocument struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generatedAt"`
}

var severityWording = map[string]string{
	"low":      "minor",
	"medium":   "moderate",
	"high":     "serious",
	"critical": "severe",
}

var categoryWording = map[string]string{
	"verbal_harassment":   "verbal harassment",
	"physical_harassment": "physical harassment",
	"sexual_harassment":   "sexual harassment",
	"discrimination":      "discrimination",
	"bullying":            "bullying",
	"retaliation":         "retaliation",
	"other":               "inappropriate behavior",
}

// GeneratePoshComplaint builds a formal POSH Act complaint document from an
// incident record.
func GeneratePoshComplaint(incident *model.Incident) GeneratedDocument {
	category := categoryWording[incident.Category]
	if category == "" {
		category = "inappropriate behavior"
	}
	location := incident.Location
	if location == "" {
		location = "the workplace"
	}
	witnesses := "No witnesses were present during this incident."
	if incident.Witnesses != "" {
		witnesses = "Witnesses to this incident include: " + incident.Witnesses
	}

	intro := fmt.Sprintf("I am writing to formally lodge a complaint under the Sexual Harassment of Women at Workplace (Prevention, Prohibition and Redressal) Act, 2013 (POSH Act) regarding an incident of %s that occurred on %s.",
		category, incident.CreateAt.Format("02/01/2006"))
	details := fmt.Sprintf("The incident involved %s %s at %s. %s",
		severityWording[incident.Severity], category, location, incident.Description)
	request := "I request that this matter be investigated thoroughly and appropriate action be taken as per the provisions of the POSH Act."
	closing := "I look forward to your prompt response and appropriate action in this matter."

	return GeneratedDocument{
		Title:       "Formal Complaint Under POSH Act, 2013",
		Content:     fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n\n%s", intro, details, witnesses, request, closing),
		GeneratedAt: time.Now(),
	}
}

// GenerateIncidentSummary builds a structured summary report of an incident.
func GenerateIncidentSummary(incident *model.Incident) GeneratedDocument {
	location := incident.Location
	if location == "" {
		location = "Not specified"
	}
	witnesses := incident.Witnesses
	if witnesses == "" {
		witnesses = "None reported"
	}

	content := fmt.Sprintf("**Incident Title:** %s\n\n**Date:** %s\n**Location:** %s\n**Severity:** %s\n**Category:** %s\n\n**Description:**\n%s\n\n**Witnesses:** %s\n\n**Status:** %s",
		incident.Title, incident.CreateAt.Format("02/01/2006"), location,
		incident.Severity, incident.Category, incident.Description, witnesses, incident.Status)

	return GeneratedDocument{
		Title:       "Incident Summary Report",
		Content:     content,
		GeneratedAt: time.Now(),
	}
}

// GenerateLegalAdvice builds the recommended legal next steps for an incident.
func GenerateLegalAdvice(incident *model.Incident) GeneratedDocument {
	content := "Based on your incident report, here are the recommended legal steps:\n\n" +
		"1. **Document Everything:** Keep detailed records of all incidents, including dates, times, locations, and witnesses.\n\n" +
		"2. **Report to Internal Committee:** If your organization has an Internal Complaints Committee (ICC), file a formal complaint.\n\n" +
		"3. **External Complaint:** If internal mechanisms fail, you can approach the Local Complaints Committee (LCC).\n\n" +
		"4. **Legal Counsel:** Consider consulting with a lawyer specializing in workplace harassment cases.\n\n" +
		"5. **Evidence Preservation:** Maintain all evidence including emails, messages, photos, and witness statements.\n\n" +
		"6. **Time Limits:** Be aware that complaints under POSH Act should be filed within 3 months of the incident.\n\n" +
		"**Your Rights:**\n- Right to a safe workplace\n- Right to file complaints without retaliation\n- Right to confidentiality\n- Right to appropriate redressal"

	return GeneratedDocument{
		Title:       "Legal Advice and Next Steps",
		Content:     content,
		GeneratedAt: time.Now(),
	}
}
