// model/assessment.go
package model

// SeverityAssessment is the classifier output. It is returned to the caller and
// attached to an incident transiently; it is not a persisted entity.
type SeverityAssessment struct {
	Severity           string   `json:"severity"`
	Confidence         float64  `json:"confidence"`
	Recommendation     string   `json:"recommendation"`
	LegalImplications  string   `json:"legalImplications"`
	ImmediateActions   []string `json:"immediateActions"`
	PoliceIntervention bool     `json:"policeIntervention"`
	PoshApplicable     bool     `json:"poshApplicable"`
	RiskFactors        []string `json:"riskFactors"`
	EvidenceNeeded     []string `json:"evidenceNeeded"`
}

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

func ValidSeverity(severity string) bool {
	switch severity {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}
