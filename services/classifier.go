package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"safespace/model"
)

// ErrDescriptionRequired is the single client error the classifier can return.
var ErrDescriptionRequired = errors.New("incident description is required")

// Analyzer produces a severity assessment from an incident narrative. The
// classifier tries its analyzers in fixed order and uses the first result.
type Analyzer interface {
	Analyze(ctx context.Context, description, location, witnesses string) (*model.SeverityAssessment, error)
}

type Classifier struct {
	analyzers []Analyzer
}

// NewClassifier builds the default analyzer chain: the Gemini strategy when an
// API key is configured, always followed by the offline keyword strategy. The
// keyword analyzer never fails, so classification is available even with every
// external dependency down.
func NewClassifier(analyzers ...Analyzer) *Classifier {
	if len(analyzers) == 0 {
		if g := NewGeminiAnalyzer(); g != nil {
			analyzers = append(analyzers, g)
		}
		analyzers = append(analyzers, KeywordAnalyzer{})
	}
	return &Classifier{analyzers: analyzers}
}

func (cl *Classifier) Classify(ctx context.Context, description, location, witnesses string) (*model.SeverityAssessment, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	var lastErr error
	for _, analyzer := range cl.analyzers {
		assessment, err := analyzer.Analyze(ctx, description, location, witnesses)
		if err == nil {
			return assessment, nil
		}
		// Upstream failures are absorbed, never surfaced to the caller.
		log.Printf("analyzer failed, trying next: %v", err)
		lastErr = err
	}
	return nil, lastErr
}

// ShouldEscalate reports whether an assessed severity triggers the
// geolocation + station lookup + FIR draft flow.
func ShouldEscalate(severity string) bool {
	return severity == model.SeverityCritical || severity == model.SeverityHigh
}

// KeywordAnalyzer is the deterministic offline fallback. Tiers are evaluated
// in strict precedence order so the most severe applicable classification
// wins when keywords from several tiers co-occur.
type KeywordAnalyzer struct{}

var criticalKeywords = []string{"physical", "assault", "attack", "threat", "kill", "weapon"}
var highKeywords = []string{"stalking", "harassment", "repeated", "following", "intimidate", "blackmail"}
var mediumKeywords = []string{"inappropriate", "comment", "behavior", "uncomfortable", "verbal"}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func (KeywordAnalyzer) Analyze(_ context.Context, description, _, _ string) (*model.SeverityAssessment, error) {
	lower := strings.ToLower(description)

	if containsAny(lower, criticalKeywords) {
		return &model.SeverityAssessment{
			Severity:          model.SeverityCritical,
			Confidence:        0.9,
			Recommendation:    "This appears to be a critical incident involving physical violence or serious threats. IMMEDIATE ACTION REQUIRED: Contact police immediately, seek medical attention if injured, and ensure your safety. This is a criminal offense that requires immediate law enforcement intervention.",
			LegalImplications: "This constitutes a criminal offense under Indian Penal Code (IPC) sections 354, 354A, 354B, 354C, 354D, 509, 506, 307, 323, 324, 325, 326. File an FIR immediately.",
			ImmediateActions: []string{
				"Call police immediately (100)",
				"Seek medical attention if injured",
				"Document injuries with photos",
				"Preserve all evidence",
				"Contact emergency contacts",
			},
			PoliceIntervention: true,
			PoshApplicable:     true,
			RiskFactors:        []string{"Physical violence", "Immediate danger", "Criminal offense"},
			EvidenceNeeded:     []string{"Medical reports", "Photographs", "Witness statements", "Police report"},
		}, nil
	}

	if containsAny(lower, highKeywords) {
		return &model.SeverityAssessment{
			Severity:          model.SeverityHigh,
			Confidence:        0.85,
			Recommendation:    "This appears to be a serious case of harassment or stalking. Consider filing a police complaint and seek legal assistance. Document all incidents and preserve evidence. This behavior may constitute criminal harassment under IPC Section 354D.",
			LegalImplications: "This may constitute criminal harassment under IPC Section 354D (stalking) and workplace harassment under POSH Act. Consider filing an FIR.",
			ImmediateActions: []string{
				"Document all incidents in detail",
				"Preserve digital evidence (messages, calls)",
				"Consider filing police complaint",
				"Inform trusted family/friends",
				"Seek legal counsel",
			},
			PoliceIntervention: true,
			PoshApplicable:     true,
			RiskFactors:        []string{"Stalking behavior", "Repeated incidents", "Intimidation"},
			EvidenceNeeded:     []string{"Incident logs", "Digital evidence", "Witness statements", "Communication records"},
		}, nil
	}

	if containsAny(lower, mediumKeywords) {
		return &model.SeverityAssessment{
			Severity:          model.SeverityMedium,
			Confidence:        0.8,
			Recommendation:    "This appears to be inappropriate workplace behavior that should be addressed. Report to HR or management, document the incident, and consider seeking support from workplace safety resources.",
			LegalImplications: "This may constitute workplace harassment under POSH Act. The organization has a legal obligation to investigate and take appropriate action.",
			ImmediateActions: []string{
				"Report to HR or management",
				"Document the incident in detail",
				"Preserve any evidence",
				"Seek support from workplace safety resources",
				"Consider filing internal complaint",
			},
			PoliceIntervention: false,
			PoshApplicable:     true,
			RiskFactors:        []string{"Workplace environment", "Power dynamics", "Inappropriate behavior"},
			EvidenceNeeded:     []string{"Written documentation", "Witness statements", "Communication records"},
		}, nil
	}

	// No tier matched: generic moderate assessment.
	return &model.SeverityAssessment{
		Severity:          model.SeverityMedium,
		Confidence:        0.7,
		Recommendation:    "Based on the description, this appears to be a moderate incident. Document all details, preserve any evidence, and consider reporting to HR or appropriate authorities. Seek support from workplace safety resources.",
		LegalImplications: "This may fall under workplace harassment policies. Consider consulting with legal professionals for specific guidance.",
		ImmediateActions: []string{
			"Document the incident in detail",
			"Preserve any evidence (messages, emails, photos)",
			"Report to HR or management",
			"Seek emotional support if needed",
		},
		PoliceIntervention: false,
		PoshApplicable:     true,
		RiskFactors:        []string{"Workplace environment", "Power dynamics"},
		EvidenceNeeded:     []string{"Written documentation", "Witness statements", "Digital evidence"},
	}, nil
}
