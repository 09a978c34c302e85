package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gente-api/internal/config"
	"github.com/BruksfildServices01/gente-api/internal/session"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(cfg.CORSOrigins))

	api := r.Group("/api", AuthMiddleware(cfg))
	api.GET("/who", func(c *gin.Context) {
		s, _ := session.From(c)
		c.JSON(http.StatusOK, gin.H{"user_id": s.UserID})
	})
	api.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := newRouter(cfg)

	operator, err := session.Issue("secret", session.Session{UserID: 5, Role: session.RoleOperator}, time.Hour, time.Now())
	require.NoError(t, err)
	admin, err := session.Issue("secret", session.Session{UserID: 1, Role: session.RoleAdmin}, time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"sem header", "/api/who", "", http.StatusUnauthorized},
		{"esquema errado", "/api/who", "Basic abc", http.StatusUnauthorized},
		{"token invalido", "/api/who", "Bearer abc", http.StatusUnauthorized},
		{"operador", "/api/who", "Bearer " + operator, http.StatusOK},
		{"operador em rota admin", "/api/admin", "Bearer " + operator, http.StatusForbidden},
		{"admin", "/api/admin", "Bearer " + admin, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(&config.Config{JWTSecret: "secret"})

	req := httptest.NewRequest(http.MethodOptions, "/api/who", nil)
	req.Header.Set("Origin", "https://gente.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://gente.local", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowList(t *testing.T) {
	r := newRouter(&config.Config{JWTSecret: "secret", CORSOrigins: []string{"https://gente.local/"}})

	for origin, want := range map[string]string{
		"https://gente.local": "https://gente.local",
		"https://evil.local":  "",
	} {
		req := httptest.NewRequest(http.MethodOptions, "/api/who", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, want, w.Header().Get("Access-Control-Allow-Origin"), origin)
	}
}
