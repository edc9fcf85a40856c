// Package middleware provides HTTP authentication middleware.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/doc-center/internal/pkg/httputils"
	"github.com/kart-io/doc-center/pkg/errors"
	"github.com/kart-io/doc-center/pkg/security/auth/jwt"
)

// UsernameKey is the gin context key holding the authenticated username.
const UsernameKey = "username"

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*jwt.Claims, error)
}

// AuthN returns a gin middleware that requires a valid bearer token and
// stores the token subject in the request context.
func AuthN(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputils.WriteResponse(c, errors.ErrUnauthorized.WithMessage("missing authorization header"), nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httputils.WriteResponse(c, errors.ErrUnauthorized.WithMessage("invalid authorization header"), nil)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			logAuthDenied(c, err)
			httputils.WriteResponse(c, err, nil)
			c.Abort()
			return
		}

		c.Set(UsernameKey, claims.Subject)
		c.Next()
	}
}

// UsernameFrom returns the authenticated username from the context.
func UsernameFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(UsernameKey)
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}

// logAuthDenied logs authentication failures for security audit.
func logAuthDenied(c *gin.Context, err error) {
	logger.Warnw("authentication denied",
		"error", err.Error(),
		"remote_addr", c.ClientIP(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_agent", c.Request.UserAgent(),
	)
}
