package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookly-be/internal/authz"
	"bookly-be/internal/jwt"
	"bookly-be/internal/tokenstore"
)

const actorContextKey = "actor"

// AuthMiddleware validates the bearer token, rejects tokens issued before the
// user's logout watermark and places the actor in the request context.
func AuthMiddleware(jwtService *jwt.JWTService, tokens tokenstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or malformed Authorization header",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		revoked, err := tokens.IsRevoked(c.Request.Context(), claims.UserID, claims.IssuedAt.Time)
		if err != nil || revoked {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Token has been revoked",
			})
			c.Abort()
			return
		}

		c.Set(actorContextKey, &authz.Actor{
			UserID:  claims.UserID,
			IsAdmin: claims.IsAdmin,
		})
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor, or nil if the request
// did not pass AuthMiddleware.
func ActorFromContext(c *gin.Context) *authz.Actor {
	v, exists := c.Get(actorContextKey)
	if !exists {
		return nil
	}
	actor, ok := v.(*authz.Actor)
	if !ok {
		return nil
	}
	return actor
}

// RequirePermission aborts with 403 unless the policy allows the actor to
// perform the action. Route-level twin of the checks inside the services.
func RequirePermission(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authz.CanPerform(ActorFromContext(c), action) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "access denied",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
