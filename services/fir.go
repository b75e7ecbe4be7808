package services

import (
	"fmt"
	"math/rand"
	"time"

	"safespace/model"

	"github.com/google/uuid"
)

// BuildFirDraft assembles a draft FIR from incident fields and the nearest
// station. Complainant identity stays anonymized: the platform withholds real
// identity by design and the draft carries only what the station needs to act.
// The draft id is freshly minted, independent of any persisted incident id.
func BuildFirDraft(date, timeOfDay, location, description, accused, witnesses, evidence string, station model.PoliceStation) *model.FirDraft {
	return &model.FirDraft{
		IncidentID:          "FIR-" + uuid.NewString(),
		ComplainantName:     "Protected Complainant",
		ComplainantAddress:  "Withheld for safety",
		ComplainantPhone:    "Withheld for safety",
		IncidentDate:        date,
		IncidentTime:        timeOfDay,
		IncidentLocation:    location,
		IncidentDescription: description,
		AccusedDetails:      accused,
		Witnesses:           witnesses,
		Evidence:            evidence,
		PoliceStation:       station,
		Status:              model.FirStatusDraft,
		CreatedAt:           time.Now(),
	}
}

type SubmissionResult struct {
	Success   bool   `json:"success"`
	FirNumber string `json:"firNumber,omitempty"`
	Message   string `json:"message"`
}

// FirSubmitter lodges a draft with its police station. The simulated
// implementation stands in for a real police-department integration; swapping
// it out must not change any caller.
type FirSubmitter interface {
	Submit(draft *model.FirDraft) SubmissionResult
}

// SimulatedSubmitter performs a single probabilistic attempt. On success the
// draft moves draft->lodged and SubmittedAt is set; on failure the draft is
// left untouched so the caller can offer an explicit manual retry. It never
// retries on its own.
type SimulatedSubmitter struct {
	SuccessRate float64
	Rand        *rand.Rand
}

func NewSimulatedSubmitter() *SimulatedSubmitter {
	return &SimulatedSubmitter{
		SuccessRate: 0.9,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateFirNumber mints a reference in the form PS/YYYY/NNNN.
func GenerateFirNumber(r *rand.Rand) string {
	const stationCode = "PS"
	year := time.Now().Year()
	return fmt.Sprintf("%s/%d/%04d", stationCode, year, r.Intn(10000))
}

func (s *SimulatedSubmitter) Submit(draft *model.FirDraft) SubmissionResult {
	if s.Rand.Float64() >= s.SuccessRate {
		return SubmissionResult{
			Success: false,
			Message: fmt.Sprintf("Failed to lodge FIR at %s. Please try again or contact the police station directly.", draft.PoliceStation.Name),
		}
	}

	firNumber := GenerateFirNumber(s.Rand)
	now := time.Now()
	draft.FirNumber = firNumber
	draft.Status = model.FirStatusLodged
	draft.SubmittedAt = &now
	return SubmissionResult{
		Success:   true,
		FirNumber: firNumber,
		Message:   fmt.Sprintf("FIR successfully lodged at %s. FIR Number: %s", draft.PoliceStation.Name, firNumber),
	}
}
