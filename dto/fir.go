package dto

import "safespace/model"

type FirDraftRequest struct {
	IncidentDate        string              `json:"incidentDate"`
	IncidentTime        string              `json:"incidentTime"`
	IncidentLocation    string              `json:"incidentLocation" binding:"required"`
	IncidentDescription string              `json:"incidentDescription" binding:"required"`
	AccusedDetails      string              `json:"accusedDetails"`
	Witnesses           string              `json:"witnesses"`
	Evidence            string              `json:"evidence"`
	PoliceStation       model.PoliceStation `json:"policeStation" binding:"required"`
}
