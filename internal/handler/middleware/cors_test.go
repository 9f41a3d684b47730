//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"booking-flow/internal/handler/middleware"
	"booking-flow/internal/pkg/config"
	"booking-flow/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().CORS

	var handler gin.HandlerFunc
	require.NotPanics(t, func() { handler = middleware.NewCORSMiddleware(cfg) })

	router := gin.New()
	router.Use(handler)
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	t.Run("allowed origin gets location and request id exposed", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil,
			map[string]string{"Origin": cfg.AllowOrigins[0]})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, cfg.AllowOrigins[0], rec.Header().Get("Access-Control-Allow-Origin"))
		exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, "location")
		assert.Contains(t, exposed, "x-request-id")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil,
			map[string]string{"Origin": "http://evil.example"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
