package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/response"
)

const scopeKey = "scope"

// Auth validates the bearer session token and attaches the caller's scope
// to the request. Requests without a valid token are rejected before any
// body processing happens.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.sessions.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "Auth: session rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:            claims.UserID,
			Email:             claims.Email,
			GoogleAccessToken: claims.AccessToken,
		})
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// ScopeFromContext returns the scope placed by Auth. The boolean is false
// on routes that skipped the middleware.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
