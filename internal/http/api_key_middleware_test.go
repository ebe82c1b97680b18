package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/allisson/go-pwdhash"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createAPIKeyRouter builds a router guarded by APIKeyMiddleware for the
// given Argon2id hash.
func createAPIKeyRouter(apiKeyHash string) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(APIKeyMiddleware(apiKeyHash, logger))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func hashTestKey(t *testing.T, plainKey string) string {
	t.Helper()

	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	require.NoError(t, err)

	hash, err := hasher.Hash([]byte(plainKey))
	require.NoError(t, err)

	return hash
}

func TestAPIKeyMiddleware(t *testing.T) {
	apiKeyHash := hashTestKey(t, "super-secret-key")
	router := createAPIKeyRouter(apiKeyHash)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization header",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer key",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key",
			authHeader: "Bearer not-the-key",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid key",
			authHeader: "Bearer super-secret-key",
			wantStatus: http.StatusOK,
		},
		{
			name:       "bearer prefix is case-insensitive",
			authHeader: "BEARER super-secret-key",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), "unauthorized")
			}
		})
	}
}

// TestAPIKeyMiddleware_DifferentHashesIndependent verifies a key only opens
// the router configured with its own hash.
func TestAPIKeyMiddleware_DifferentHashesIndependent(t *testing.T) {
	routerA := createAPIKeyRouter(hashTestKey(t, "key-a"))
	routerB := createAPIKeyRouter(hashTestKey(t, "key-b"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer key-a")
	routerA.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer key-a")
	routerB.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
