package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

const (
	// AccessTokenCookie is the cookie carrying the access token.
	AccessTokenCookie = "access_token"
	// RefreshTokenCookie is the cookie carrying the refresh token.
	RefreshTokenCookie = "refresh_token"

	userKey   = "user"
	userIDKey = "user_id"
)

// AuthMW is the authentication gate. It resolves the access token, checks
// it against the access secret and populates the request-scoped user from
// the session cache — never from the durable store.
type AuthMW struct {
	tokenSvc    domain.TokenService
	sessionRepo domain.SessionRepository
}

// NewAuthMW creates the authentication middleware
func NewAuthMW(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc, sessionRepo: sessionRepo}
}

// RequireAuth rejects the request before any lifecycle operation runs
// when the token is missing, invalid or the session snapshot is gone.
func (m *AuthMW) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := m.tokenSvc.ValidateAccessToken(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		user, err := m.sessionRepo.Find(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole is a placeholder for role-based access control. It is not
// attached to any route; role enforcement is out of scope for this
// service beyond the boolean authentication gate.
func (m *AuthMW) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := AuthenticatedUser(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "insufficient role",
		})
	}
}

// AuthenticatedUser returns the user the gate placed on the context.
func AuthenticatedUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}

// AuthenticatedUserID returns the user id the gate placed on the context.
func AuthenticatedUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// extractToken prefers the access_token cookie and falls back to a
// Bearer authorization header.
func extractToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": domain.ErrUnauthenticated.Error(),
	})
}
