package http

import (
	"log/slog"
	"strings"

	"github.com/allisson/go-pwdhash"
	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/sealbox/internal/errors"
	"github.com/allisson/sealbox/internal/httputil"
)

// APIKeyMiddleware authenticates requests via a Bearer API key in the
// Authorization header, verified against an Argon2id hash.
//
// The server never stores the plain key. Operators generate the hash with the
// hash-api-key command and configure it via API_KEY_HASH; callers send the
// plain key on every request.
//
// Authorization header format: "Bearer <key>" (case-insensitive "bearer").
//
// Error handling:
//   - Missing Authorization header: 401 Unauthorized
//   - Malformed Authorization header: 401 Unauthorized
//   - Key does not match the hash: 401 Unauthorized
func APIKeyMiddleware(apiKeyHash string, logger *slog.Logger) gin.HandlerFunc {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with a valid policy
		panic(err)
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		plainKey := authHeader[len(bearerPrefix):]
		if plainKey == "" {
			logger.Debug("authentication failed: empty bearer key")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		ok, err := hasher.Verify([]byte(plainKey), apiKeyHash)
		if err != nil || !ok {
			logger.Debug("authentication failed: invalid api key")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
