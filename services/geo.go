package services

import (
	"fmt"
	"math"
	"sort"

	"safespace/model"
)

// DistanceKm returns the great-circle distance between two coordinates using
// the Haversine formula, rounded to one decimal place. Coordinates are not
// validated here; that belongs to the caller.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusKm * c
	return math.Round(distance*10) / 10
}

// StationDirectory is the static list of candidate police stations.
var StationDirectory = []model.PoliceStation{
	{
		Name:        "Central Police Station",
		Address:     "123 Main Street, City Center, Mumbai, Maharashtra",
		Phone:       "022-22621855",
		Coordinates: model.Coordinates{Lat: 19.0760, Lng: 72.8777},
	},
	{
		Name:        "Bandra Police Station",
		Address:     "456 Linking Road, Bandra West, Mumbai, Maharashtra",
		Phone:       "022-26422222",
		Coordinates: model.Coordinates{Lat: 19.0596, Lng: 72.8295},
	},
	{
		Name:        "Andheri Police Station",
		Address:     "789 Andheri Kurla Road, Andheri East, Mumbai, Maharashtra",
		Phone:       "022-26831900",
		Coordinates: model.Coordinates{Lat: 19.1197, Lng: 72.8464},
	},
	{
		Name:        "Delhi Police Station - Connaught Place",
		Address:     "1 Parliament Street, Connaught Place, New Delhi",
		Phone:       "011-23469000",
		Coordinates: model.Coordinates{Lat: 28.6139, Lng: 77.2090},
	},
	{
		Name:        "Delhi Police Station - Dwarka",
		Address:     "Sector 12, Dwarka, New Delhi",
		Phone:       "011-28036000",
		Coordinates: model.Coordinates{Lat: 28.5920, Lng: 77.0580},
	},
	{
		Name:        "Bangalore Police Station - Koramangala",
		Address:     "80 Feet Road, Koramangala, Bangalore, Karnataka",
		Phone:       "080-25533666",
		Coordinates: model.Coordinates{Lat: 12.9716, Lng: 77.5946},
	},
	{
		Name:        "Chennai Police Station - T Nagar",
		Address:     "Pondy Bazaar, T Nagar, Chennai, Tamil Nadu",
		Phone:       "044-24333666",
		Coordinates: model.Coordinates{Lat: 13.0827, Lng: 80.2707},
	},
	{
		Name:        "Hyderabad Police Station - Banjara Hills",
		Address:     "Road No. 12, Banjara Hills, Hyderabad, Telangana",
		Phone:       "040-23320555",
		Coordinates: model.Coordinates{Lat: 17.3850, Lng: 78.4867},
	},
	{
		Name:        "Kolkata Police Station - Park Street",
		Address:     "Park Street, Kolkata, West Bengal",
		Phone:       "033-22214444",
		Coordinates: model.Coordinates{Lat: 22.5726, Lng: 88.3639},
	},
	{
		Name:        "Pune Police Station - Koregaon Park",
		Address:     "North Main Road, Koregaon Park, Pune, Maharashtra",
		Phone:       "020-26123333",
		Coordinates: model.Coordinates{Lat: 18.5204, Lng: 73.8567},
	},
}

// FindNearbyStations ranks the directory by distance from the given point and
// returns at most 5 stations within radiusKm, sorted nearest first. When no
// station falls inside the radius the single globally-nearest station is
// returned instead, so the result is never empty while the directory is not.
func FindNearbyStations(lat, lng, radiusKm float64) ([]model.PoliceStation, string) {
	ranked := make([]model.PoliceStation, len(StationDirectory))
	copy(ranked, StationDirectory)
	for i := range ranked {
		ranked[i].Distance = DistanceKm(lat, lng, ranked[i].Coordinates.Lat, ranked[i].Coordinates.Lng)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	var nearby []model.PoliceStation
	for _, station := range ranked {
		if station.Distance <= radiusKm {
			nearby = append(nearby, station)
		}
		if len(nearby) == 5 {
			break
		}
	}

	if len(nearby) == 0 {
		if len(ranked) == 0 {
			return nil, "Station directory is empty."
		}
		return ranked[:1], fmt.Sprintf("No police stations found within %gkm. Showing nearest station.", radiusKm)
	}
	return nearby, fmt.Sprintf("Found %d police station(s) within %gkm.", len(nearby), radiusKm)
}
