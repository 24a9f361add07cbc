package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooddelivery/auth"
	"fooddelivery/config"
	httpapi "fooddelivery/route-svc/internal/api/http"
	"fooddelivery/route-svc/internal/service"
)

// TestDirectionsFlow drives the full router against a fake Mapbox that fails
// once before answering, exercising the retrying client.
func TestDirectionsFlow(t *testing.T) {
	calls := 0
	mapboxSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		assert.Equal(t, "pk.test", r.URL.Query().Get("access_token"))
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"geometry":"_p~iF~ps|U","distance":1234.5}]}`))
	}))
	defer mapboxSrv.Close()

	cfg := &config.Config{MapboxToken: "pk.test", MapboxBaseURL: mapboxSrv.URL, MapboxTimeout: 2 * time.Second}
	logger := zap.NewNop()
	verifier := auth.NewJWTVerifier("secret", "")
	handler := httpapi.NewHandler(service.NewDirectionsService(newMapboxClient(cfg, logger), logger), verifier, logger)
	router := httpapi.NewRouter(handler, logger, nil)

	token, err := verifier.Issue("u1", "", "", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/directions",
		strings.NewReader(`{"startLat":10.7769,"startLon":106.7009,"endLat":10.7626,"endLon":106.6602}`))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"encodedPolyline":"_p~iF~ps|U","distanceMeters":1234.5}`, w.Body.String())
	assert.Equal(t, 2, calls)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `circuit_breaker_state{name="mapbox"} 0`)
}
