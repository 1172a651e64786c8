package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"wardrobe-catalog/internal/model"
	"wardrobe-catalog/pkg/log"
	"wardrobe-catalog/pkg/response"
)

const scopeKey = "scope"

// Auth requires a bearer token. The token is not verified here; the catalog
// backend that issued it does that on every fetch.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := scopeFromRequest(c)
		if !sc.Authenticated() {
			response.Unauthorized(c)
			return
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// OptionalAuth attaches a scope whether or not a token was sent.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(scopeKey, scopeFromRequest(c))
		c.Next()
	}
}

// GetScope returns the scope set by Auth or OptionalAuth.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return scopeFromRequest(c)
}

func scopeFromRequest(c *gin.Context) model.Scope {
	return model.Scope{
		Token:     bearerToken(c.GetHeader("Authorization")),
		RequestID: log.RequestID(c.Request.Context()),
		ClientIP:  c.ClientIP(),
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
