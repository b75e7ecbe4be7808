package dto

// Pointer fields so a missing coordinate can be told apart from a legitimate
// zero value. Radius defaults to 10km when absent; an explicit 0 is honored.
type StationLookupRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    *float64 `json:"radius"`
}
