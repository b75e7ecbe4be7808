package dto

type IncidentAnalysisRequest struct {
	Description string `json:"description"`
	Location    string `json:"location"`
	Witnesses   string `json:"witnesses"`
}
