package middleware_test

import (
	"net/http"
	"testing"

	"qa-tracker-backend/internal/api/middleware"
	"qa-tracker-backend/internal/config"
	"qa-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.RequestID())
	h.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := h.MakeRequest(http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), w.Body.String())

	w = h.MakeRequestWithHeaders(http.MethodGet, "/ping", nil, map[string]string{middleware.RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.Logger(), middleware.Recovery())
	h.Router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := h.MakeRequest(http.MethodGet, "/boom", nil)
	testutils.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestCORS(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.CORS(&config.Config{AllowedOrigins: []string{"http://localhost:5173"}}))
	h.Router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{"allowed origin", http.MethodGet, "http://localhost:5173", http.StatusOK, "http://localhost:5173"},
		{"foreign origin", http.MethodGet, "http://evil.example", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "http://localhost:5173", http.StatusNoContent, "http://localhost:5173"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.MakeRequestWithHeaders(tt.method, "/ping", nil, map[string]string{"Origin": tt.origin})
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllowed, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
