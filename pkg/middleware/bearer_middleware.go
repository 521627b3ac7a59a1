package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"degreedecider/pkg/utils"
)

const AccessTokenKey = "access_token"

// BearerToken returns the token from an "Authorization: Bearer <token>"
// header, or "" when there is none.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// RequireBearer rejects requests without a bearer token and stashes the
// token for handlers. Verifying it is the session gate's job.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized - please sign in")
			c.Abort()
			return
		}
		c.Set(AccessTokenKey, token)
		c.Next()
	}
}

// RequireAnonKey gates public provider operations behind the service's
// anonymous key. An empty key disables the check.
func RequireAnonKey(anonKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if anonKey == "" {
			c.Next()
			return
		}
		token := BearerToken(c)
		if subtle.ConstantTimeCompare([]byte(token), []byte(anonKey)) != 1 {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid API key")
			c.Abort()
			return
		}
		c.Next()
	}
}
