package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bookingcore/internal/handler/httperr"
	"bookingcore/internal/pkg/errs"
	"bookingcore/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingToken = errs.New("missing bearer token")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxBusinessIDKey = "business_id"
	ctxUserRoleKey   = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth scopes dashboard requests to the business carried by the
// bearer token. Tokens are minted by the external auth service.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required")
			return
		}

		businessID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxBusinessIDKey, businessID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

func GetBusinessID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxBusinessIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(string)
	return role, ok
}
