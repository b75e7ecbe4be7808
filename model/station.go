// model/station.go
package model

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PoliceStation is a station directory entry. Distance is computed at query
// time against the caller's coordinates and is zero in the static directory.
type PoliceStation struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Distance    float64     `json:"distance"`
	Coordinates Coordinates `json:"coordinates"`
}
