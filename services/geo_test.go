package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(19.0760, 72.8777, 19.0760, 72.8777))
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(19.0760, 72.8777, 28.6139, 77.2090)
	b := DistanceKm(28.6139, 77.2090, 19.0760, 72.8777)
	assert.Equal(t, a, b)
}

func TestDistanceKmKnownPair(t *testing.T) {
	// Mumbai city center to Bandra is a handful of kilometers, not hundreds.
	d := DistanceKm(19.0760, 72.8777, 19.0596, 72.8295)
	assert.Greater(t, d, 1.0)
	assert.Less(t, d, 20.0)
}

func TestFindNearbyStationsAtCentralStation(t *testing.T) {
	stations, message := FindNearbyStations(19.0760, 72.8777, 10)

	require.NotEmpty(t, stations)
	assert.Equal(t, "Central Police Station", stations[0].Name)
	assert.Equal(t, 0.0, stations[0].Distance)
	assert.Contains(t, message, "within 10km")

	for i := 1; i < len(stations); i++ {
		assert.GreaterOrEqual(t, stations[i].Distance, stations[i-1].Distance)
		assert.LessOrEqual(t, stations[i].Distance, 10.0)
	}
}

func TestFindNearbyStationsCapsAtFive(t *testing.T) {
	stations, _ := FindNearbyStations(19.0760, 72.8777, 100000)
	assert.Len(t, stations, 5)
}

func TestFindNearbyStationsFallsBackToNearest(t *testing.T) {
	// Middle of the Atlantic: nothing within radius, nearest station returned.
	stations, message := FindNearbyStations(0, 0, 10)

	require.Len(t, stations, 1)
	assert.Contains(t, message, "Showing nearest station")
	assert.Greater(t, stations[0].Distance, 10.0)

	for _, station := range StationDirectory {
		d := DistanceKm(0, 0, station.Coordinates.Lat, station.Coordinates.Lng)
		assert.GreaterOrEqual(t, d, stations[0].Distance)
	}
}

func TestFindNearbyStationsZeroRadiusStillReturnsNearest(t *testing.T) {
	stations, _ := FindNearbyStations(28.6000, 77.2000, 0)
	require.Len(t, stations, 1)
}
