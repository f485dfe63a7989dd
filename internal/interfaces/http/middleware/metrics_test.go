package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *HTTPMetrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestHTTPMetrics(t *testing.T) {
	m, err := NewHTTPMetrics("logistics")
	require.NoError(t, err)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `logistics_http_server_requests_total{method="GET",route="/items/:id",status_code="200"} 2`)
	assert.Contains(t, body, `logistics_http_server_requests_total{method="GET",route="unknown",status_code="404"} 1`)
	assert.Contains(t, body, `logistics_http_server_request_duration_seconds_count{method="GET",route="/items/:id"} 2`)
	assert.Contains(t, body, "logistics_http_server_active_requests 0")
}

func TestHTTPMetrics_IndependentRegistries(t *testing.T) {
	_, err := NewHTTPMetrics("a")
	require.NoError(t, err)
	_, err = NewHTTPMetrics("a")
	assert.NoError(t, err)
}
