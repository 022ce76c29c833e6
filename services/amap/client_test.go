package amap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures every query sent to it, keyed by path, and serves
// the configured body per path.
type recordingServer struct {
	*httptest.Server
	requests map[string][]url.Values
}

func newRecordingServer(t *testing.T, bodies map[string]string) *recordingServer {
	t.Helper()
	rs := &recordingServer{requests: make(map[string][]url.Values)}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.requests[r.URL.Path] = append(rs.requests[r.URL.Path], r.URL.Query())
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) lastQuery(t *testing.T, path string) url.Values {
	t.Helper()
	reqs := rs.requests[path]
	require.NotEmpty(t, reqs, "no request recorded for %s", path)
	return reqs[len(reqs)-1]
}

func TestTextSearchParams(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		"/place/text": `{"status":"1","pois":[]}`,
	})
	client := NewClientWithBaseURL("test-key", srv.URL)

	body, err := client.TextSearch(context.Background(), "museum", "Beijing", true)
	require.NoError(t, err)
	assert.Contains(t, body, `"status":"1"`)

	q := srv.lastQuery(t, "/place/text")
	assert.Equal(t, "museum", q.Get("keywords"))
	assert.Equal(t, "Beijing", q.Get("city"))
	assert.Equal(t, "true", q.Get("citylimit"))
	assert.Equal(t, "test-key", q.Get("key"))
}

func TestWeatherRequestsFullForecast(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		"/weather/weatherInfo": `{"status":"1","forecasts":[]}`,
	})
	client := NewClientWithBaseURL("test-key", srv.URL)

	_, err := client.Weather(context.Background(), "Beijing")
	require.NoError(t, err)

	q := srv.lastQuery(t, "/weather/weatherInfo")
	assert.Equal(t, "Beijing", q.Get("city"))
	assert.Equal(t, "all", q.Get("extensions"))
}

func TestGeocodeOmitsEmptyCity(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		"/geocode/geo": `{"status":"1","geocodes":[]}`,
	})
	client := NewClientWithBaseURL("test-key", srv.URL)

	_, err := client.Geocode(context.Background(), "Tiananmen Square", "")
	require.NoError(t, err)

	q := srv.lastQuery(t, "/geocode/geo")
	assert.Equal(t, "Tiananmen Square", q.Get("address"))
	assert.False(t, q.Has("city"))
}

func TestDirectionByAddressWalking(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		"/geocode/geo":       `{"status":"1","geocodes":[{"location":"116.397,39.909"}]}`,
		"/direction/walking": `{"status":"1","route":{}}`,
	})
	client := NewClientWithBaseURL("test-key", srv.URL)

	_, err := client.DirectionByAddress(context.Background(),
		"Tiananmen Square", "Palace Museum", "Beijing", "Beijing", RouteWalking)
	require.NoError(t, err)

	// Both endpoints geocoded before routing.
	assert.Len(t, srv.requests["/geocode/geo"], 2)
	q := srv.lastQuery(t, "/direction/walking")
	assert.Equal(t, "116.397,39.909", q.Get("origin"))
	assert.Equal(t, "116.397,39.909", q.Get("destination"))
}

func TestDirectionByAddressTransitCarriesCities(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		"/geocode/geo":                  `{"status":"1","geocodes":[{"location":"121.473,31.230"}]}`,
		"/direction/transit/integrated": `{"status":"1","route":{}}`,
	})
	client := NewClientWithBaseURL("test-key", srv.URL)

	_, err := client.DirectionByAddress(context.Background(),
		"The Bund", "People's Square", "Shanghai", "Shanghai", RouteTransit)
	require.NoError(t, err)

	q := srv.lastQuery(t, "/direction/transit/integrated")
	assert.Equal(t, "Shanghai", q.Get("city"))
	assert.Equal(t, "Shanghai", q.Get("cityd"))
}

func TestDirectionByAddressGeocodeMiss(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		"/geocode/geo": `{"status":"0","geocodes":[]}`,
	})
	client := NewClientWithBaseURL("test-key", srv.URL)

	_, err := client.DirectionByAddress(context.Background(),
		"nowhere", "elsewhere", "Beijing", "Beijing", RouteDriving)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no geocode result")
}

func TestMissingKeyRejected(t *testing.T) {
	client := NewClient("")
	_, err := client.TextSearch(context.Background(), "museum", "Beijing", true)
	require.Error(t, err)
}
