package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(allowedOrigins string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(allowedOrigins))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func doGet(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{"no origin with allow-list", "https://truenorthmaterials.com", "", http.StatusOK, ""},
		{"allowed origin", "https://truenorthmaterials.com", "https://truenorthmaterials.com", http.StatusOK, "https://truenorthmaterials.com"},
		{"disallowed origin", "https://truenorthmaterials.com", "https://evil.example", http.StatusForbidden, ""},
		{"wildcard entry", "*", "https://anywhere.example", http.StatusOK, "https://anywhere.example"},
		{"empty allow-list echoes origin", "", "https://anywhere.example", http.StatusOK, "https://anywhere.example"},
		{"empty allow-list without origin", "", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(corsRouter(tt.allowed), tt.origin)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllowed, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := corsRouter("https://truenorthmaterials.com")

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "https://truenorthmaterials.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
}
