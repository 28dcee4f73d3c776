package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backendservices/python-api/internal/models"
	"github.com/backendservices/python-api/internal/services"
	"github.com/backendservices/python-api/internal/sysinfo"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// setupRouter binds the handlers to a bare engine backed by fixed host facts
func setupRouter(host sysinfo.Provider) *gin.Engine {
	svc := services.NewInfoService(host, func() time.Time { return fixedTime })
	h := NewInfoHandler(svc)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)
	r.GET("/api/health", h.Health)
	r.GET("/api/data", h.Data)
	r.GET("/api/info", h.Info)
	return r
}

func doRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func okHost() sysinfo.Static {
	return sysinfo.Static{Host: "web-01", OS: "Linux", Version: "go1.24.0"}
}

func TestInfoHandler_Health(t *testing.T) {
	w := doRequest(setupRouter(okHost()), http.MethodGet, "/api/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{
		"status": "healthy",
		"service": "python-api",
		"hostname": "web-01",
		"timestamp": "2024-01-01T00:00:00.000000"
	}`, w.Body.String())
}

func TestInfoHandler_Data(t *testing.T) {
	w := doRequest(setupRouter(okHost()), http.MethodGet, "/api/data")

	require.Equal(t, http.StatusOK, w.Code)

	var body models.DataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "data from python api", body.Message)
	assert.Equal(t, "python-api", body.Service)
	assert.Equal(t, "web-01", body.Hostname)
	assert.Equal(t, []string{"item1", "item2", "item3"}, body.Datetime.Items)
	assert.Equal(t, 3, body.Datetime.Count)
	assert.Equal(t, "2024-01-01T00:00:00.000000", body.Timestamp)
}

func TestInfoHandler_Info(t *testing.T) {
	w := doRequest(setupRouter(okHost()), http.MethodGet, "/api/info")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"service": "python-api",
		"version": "1.0.0",
		"hostname": "web-01",
		"platform": "Linux",
		"platform_version": "go1.24.0",
		"timestamp": "2024-01-01T00:00:00.000000"
	}`, w.Body.String())
}

func TestInfoHandler_IgnoresQueryString(t *testing.T) {
	r := setupRouter(okHost())

	plain := doRequest(r, http.MethodGet, "/api/health")
	withQuery := doRequest(r, http.MethodGet, "/api/health?verbose=1&status=down")

	require.Equal(t, http.StatusOK, withQuery.Code)
	assert.JSONEq(t, plain.Body.String(), withQuery.Body.String())
}

func TestInfoHandler_HostnameFailure(t *testing.T) {
	r := setupRouter(sysinfo.Static{Err: errors.New("uname failed")})

	for _, path := range []string{"/api/health", "/api/data", "/api/info"} {
		t.Run(path, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, path)

			require.Equal(t, http.StatusInternalServerError, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Internal Server Error", body.Error)
			assert.NotContains(t, body.Message, "uname failed")
		})
	}
}

func TestNotFound(t *testing.T) {
	w := doRequest(setupRouter(okHost()), http.MethodGet, "/api/unknown")

	require.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "no route for GET /api/unknown", body.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	w := doRequest(setupRouter(okHost()), http.MethodPost, "/api/health")

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Method Not Allowed", body.Error)
}

func TestOptions(t *testing.T) {
	r := gin.New()
	r.OPTIONS("/api/health", Options)

	w := doRequest(r, http.MethodOptions, "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET, HEAD, OPTIONS", w.Header().Get("Allow"))
	assert.Empty(t, w.Body.String())
}
