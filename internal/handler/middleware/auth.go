package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"vista-ecoupon/internal/usecase"
	"vista-ecoupon/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSessionKey   = "session"
	ctxAdminUserKey = "admin_user"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireSession authenticates member and guest tokens alike; every customer
// endpoint runs behind it.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		sess, err := m.tokenValidator.ValidateSession(token)
		if err != nil {
			slog.Warn("session token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// RequireAdmin accepts only admin-scoped tokens.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin token required",
			})
			c.Abort()
			return
		}

		username, err := m.tokenValidator.ValidateAdmin(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminUserKey, username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetSession(c *gin.Context) (shared.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return shared.Session{}, false
	}
	sess, ok := v.(shared.Session)
	return sess, ok
}

func GetAdminUser(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminUserKey)
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}
