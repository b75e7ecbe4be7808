package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"safespace/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssessment(t *testing.T) {
	text := `{"severity":"high","confidence":0.92,"recommendation":"File a complaint","policeIntervention":true,"poshApplicable":true}`

	assessment, err := parseAssessment(text)
	require.NoError(t, err)
	assert.Equal(t, model.SeverityHigh, assessment.Severity)
	assert.Equal(t, 0.92, assessment.Confidence)
	assert.True(t, assessment.PoliceIntervention)
}

func TestParseAssessmentStripsCodeFences(t *testing.T) {
	text := "```json\n{\"severity\":\"critical\",\"confidence\":0.95}\n```"

	assessment, err := parseAssessment(text)
	require.NoError(t, err)
	assert.Equal(t, model.SeverityCritical, assessment.Severity)
}

func TestParseAssessmentRejectsBadInput(t *testing.T) {
	_, err := parseAssessment("not json at all")
	assert.Error(t, err)

	_, err = parseAssessment(`{"severity":"catastrophic","confidence":0.9}`)
	assert.Error(t, err)

	_, err = parseAssessment(`{"severity":"high","confidence":1.5}`)
	assert.Error(t, err)
}

func TestGeminiAnalyzerParsesCandidate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"severity\":\"high\",\"confidence\":0.9,\"recommendation\":\"Report it\"}"}]}}]}`))
	}))
	defer server.Close()

	analyzer := &GeminiAnalyzer{APIKey: "test-key", Endpoint: server.URL, Client: server.Client()}
	assessment, err := analyzer.Analyze(context.Background(), "He keeps following me", "", "")
	require.NoError(t, err)
	assert.Equal(t, model.SeverityHigh, assessment.Severity)
}

func TestGeminiAnalyzerUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	analyzer := &GeminiAnalyzer{APIKey: "test-key", Endpoint: server.URL, Client: server.Client()}
	_, err := analyzer.Analyze(context.Background(), "He keeps following me", "", "")
	assert.Error(t, err)
}

func TestGeminiAnalyzerNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	analyzer := &GeminiAnalyzer{APIKey: "test-key", Endpoint: server.URL, Client: server.Client()}
	_, err := analyzer.Analyze(context.Background(), "He keeps following me", "", "")
	assert.Error(t, err)
}

func TestNewGeminiAnalyzerWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	assert.Nil(t, NewGeminiAnalyzer())
}
