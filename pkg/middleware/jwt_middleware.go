package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecotours/pkg/utils"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "Role"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), true
}

func authenticate(c *gin.Context, jwtManager *utils.JWTManager, tokenString string) bool {
	claims, err := jwtManager.ValidateToken(tokenString)
	if err != nil {
		return false
	}
	userID, err := claims.UserID()
	if err != nil {
		return false
	}

	c.Set(ContextUserID, userID)
	c.Set(ContextRole, claims.Role)
	c.Request = c.Request.WithContext(utils.WithPrincipal(c.Request.Context(), utils.Principal{
		UserID: userID,
		Role:   claims.Role,
	}))
	return true
}

func JWTAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}

		if !authenticate(c, jwtManager, tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Next()
	}
}

// OptionalJWTMiddleware identifies the caller when a valid bearer token is
// present and lets anonymous requests through untouched.
func OptionalJWTMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			authenticate(c, jwtManager, tokenString)
		}
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)

		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated account id, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
