package station

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/police-stations", func(c *gin.Context) {
		FindStations(c)
	})
	return router
}

func postStations(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/police-stations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestFindStationsMissingCoordinates(t *testing.T) {
	router := stationRouter()

	for _, body := range []string{`{}`, `{"latitude":19.0760}`, `{"longitude":72.8777}`, `not json`} {
		w := postStations(t, router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "latitude and longitude")
	}
}

func TestFindStationsDefaultRadius(t *testing.T) {
	router := stationRouter()

	w := postStations(t, router, `{"latitude":19.0760,"longitude":72.8777}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		PoliceStations []struct {
			Name     string  `json:"name"`
			Distance float64 `json:"distance"`
		} `json:"policeStations"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.PoliceStations)
	assert.Equal(t, "Central Police Station", response.PoliceStations[0].Name)
	assert.Equal(t, 0.0, response.PoliceStations[0].Distance)
	assert.Contains(t, response.Message, "within 10km")
}

func TestFindStationsZeroCoordinatesAreValid(t *testing.T) {
	router := stationRouter()

	// (0,0) is remote from every station; the nearest-station fallback applies.
	w := postStations(t, router, `{"latitude":0,"longitude":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Showing nearest station")
}

func TestFindStationsExplicitZeroRadius(t *testing.T) {
	router := stationRouter()

	w := postStations(t, router, `{"latitude":28.6000,"longitude":77.2000,"radius":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		PoliceStations []json.RawMessage `json:"policeStations"`
		Message        string            `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.PoliceStations, 1)
	assert.Contains(t, response.Message, "within 0km")
}
