package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"safespace/model"
)

const geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

const analysisPrompt = `You are a legal AI assistant specializing in workplace harassment and safety analysis. Your role is to analyze incident descriptions and provide:

1. **Severity Assessment**: Classify the incident as:
   - "critical" - Immediate danger, physical violence, threats to life
   - "high" - Serious harassment, stalking, repeated incidents
   - "medium" - Moderate harassment, inappropriate behavior
   - "low" - Minor incidents, isolated inappropriate comments

2. **Recommendations**: Provide specific, actionable advice based on severity

3. **Legal Implications**: Explain relevant legal aspects (POSH Act, IPC sections, etc.)

4. **Immediate Actions**: Suggest next steps for the victim

Analyze the following incident description and provide a structured response in JSON format:

{
  "severity": "critical|high|medium|low",
  "confidence": 0.95,
  "recommendation": "Detailed recommendation text",
  "legalImplications": "Legal context and implications",
  "immediateActions": ["Action 1", "Action 2", "Action 3"],
  "policeIntervention": true/false,
  "poshApplicable": true/false,
  "riskFactors": ["Factor 1", "Factor 2"],
  "evidenceNeeded": ["Evidence 1", "Evidence 2"]
}

Focus on:
- Safety and immediate protection
- Legal rights and remedies
- Evidence preservation
- Professional support options
- Escalation procedures

Be empathetic but objective. Prioritize victim safety and legal compliance.`

type geminiRequest struct {
	Contents         []geminiContent      `json:"contents"`
	GenerationConfig geminiGenConfig      `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting `json:"safetySettings"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiAnalyzer delegates classification to the Gemini text-generation API
// with a fixed instructional prompt at low temperature. Any transport, HTTP or
// parse failure is returned as an error so the classifier can fall through to
// the keyword strategy.
type GeminiAnalyzer struct {
	APIKey   string
	Endpoint string
	Client   *http.Client
}

// NewGeminiAnalyzer returns nil when GEMINI_API_KEY is unset.
func NewGeminiAnalyzer() *GeminiAnalyzer {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil
	}
	return &GeminiAnalyzer{
		APIKey:   apiKey,
		Endpoint: geminiAPIURL,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GeminiAnalyzer) Analyze(ctx context.Context, description, location, witnesses string) (*model.SeverityAssessment, error) {
	if location == "" {
		location = "Not specified"
	}
	if witnesses == "" {
		witnesses = "None mentioned"
	}

	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{
				Text: fmt.Sprintf("%s\n\nIncident Description: %s\nLocation: %s\nWitnesses: %s\n\nPlease provide a JSON response with the analysis.",
					analysisPrompt, description, location, witnesses),
			}},
		}},
		GenerationConfig: geminiGenConfig{
			Temperature:     0.3,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1000,
		},
		SafetySettings: []geminiSafetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint+"?key="+g.APIKey, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var data geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	assessment, err := parseAssessment(data.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

// parseAssessment decodes the generated text into a SeverityAssessment,
// tolerating markdown code fences around the JSON object.
func parseAssessment(text string) (*model.SeverityAssessment, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var assessment model.SeverityAssessment
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &assessment); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if !model.ValidSeverity(assessment.Severity) {
		return nil, fmt.Errorf("invalid severity %q in analysis response", assessment.Severity)
	}
	if assessment.Confidence < 0 || assessment.Confidence > 1 {
		return nil, fmt.Errorf("confidence %v out of range", assessment.Confidence)
	}
	return &assessment, nil
}
