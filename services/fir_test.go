package services

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"safespace/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStation = model.PoliceStation{
	Name:        "Central Police Station",
	Address:     "123 Main Street, City Center, Mumbai, Maharashtra",
	Phone:       "022-22621855",
	Coordinates: model.Coordinates{Lat: 19.0760, Lng: 72.8777},
}

func TestBuildFirDraftAnonymizesComplainant(t *testing.T) {
	draft := BuildFirDraft("2026-08-30", "evening", "Office parking lot",
		"He threatened me near my car", "Colleague from sales", "Security guard", "CCTV footage", testStation)

	assert.Equal(t, "Protected Complainant", draft.ComplainantName)
	assert.Equal(t, "Withheld for safety", draft.ComplainantAddress)
	assert.Equal(t, "Withheld for safety", draft.ComplainantPhone)
	assert.True(t, strings.HasPrefix(draft.IncidentID, "FIR-"))
	assert.Equal(t, model.FirStatusDraft, draft.Status)
	assert.Empty(t, draft.FirNumber)
	assert.Nil(t, draft.SubmittedAt)
	assert.Equal(t, testStation, draft.PoliceStation)
	assert.False(t, draft.CreatedAt.IsZero())
}

func TestGenerateFirNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^PS/\d{4}/\d{4}$`)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateFirNumber(r))
	}
}

func TestSubmitSuccess(t *testing.T) {
	draft := BuildFirDraft("2026-08-30", "evening", "Office", "Threatened with a weapon", "", "", "", testStation)
	submitter := &SimulatedSubmitter{SuccessRate: 1.0, Rand: rand.New(rand.NewSource(42))}

	result := submitter.Submit(draft)

	require.True(t, result.Success)
	assert.Equal(t, result.FirNumber, draft.FirNumber)
	assert.Regexp(t, `^PS/\d{4}/\d{4}$`, draft.FirNumber)
	assert.Equal(t, model.FirStatusLodged, draft.Status)
	require.NotNil(t, draft.SubmittedAt)
	assert.Contains(t, result.Message, "Central Police Station")
	assert.Contains(t, result.Message, draft.FirNumber)
}

func TestSubmitFailureLeavesDraftUntouched(t *testing.T) {
	draft := BuildFirDraft("2026-08-30", "evening", "Office", "Threatened with a weapon", "", "", "", testStation)
	submitter := &SimulatedSubmitter{SuccessRate: 0.0, Rand: rand.New(rand.NewSource(42))}

	result := submitter.Submit(draft)

	require.False(t, result.Success)
	assert.Empty(t, result.FirNumber)
	assert.Contains(t, result.Message, "Failed to lodge FIR at Central Police Station")
	assert.Equal(t, model.FirStatusDraft, draft.Status)
	assert.Empty(t, draft.FirNumber)
	assert.Nil(t, draft.SubmittedAt)
}

func TestSubmitRetryAfterFailure(t *testing.T) {
	draft := BuildFirDraft("2026-08-30", "evening", "Office", "Threatened with a weapon", "", "", "", testStation)

	failing := &SimulatedSubmitter{SuccessRate: 0.0, Rand: rand.New(rand.NewSource(7))}
	require.False(t, failing.Submit(draft).Success)

	// Each submission attempt is independent; a later attempt can succeed.
	succeeding := &SimulatedSubmitter{SuccessRate: 1.0, Rand: rand.New(rand.NewSource(7))}
	result := succeeding.Submit(draft)
	require.True(t, result.Success)
	assert.Equal(t, model.FirStatusLodged, draft.Status)
}

func TestNewSimulatedSubmitterDefaults(t *testing.T) {
	submitter := NewSimulatedSubmitter()
	assert.Equal(t, 0.9, submitter.SuccessRate)
	assert.NotNil(t, submitter.Rand)
}
