package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/jobboard-api/internal/auth"
)

// UserIDKey is where RequireAuth stores the resolved caller identity in the
// gin context.
const UserIDKey = "userID"

// RequireAuth guards mutating routes. It rejects before the handler runs
// when the Authorization header is missing or malformed, and when the
// identity service does not accept the token. It never touches the store.
func RequireAuth(verifier auth.TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		userID, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Request is not authorized"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
