package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/code"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/response"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken strips the "Bearer " prefix from the Authorization header
func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateAdmin verifies the bearer token's signature and expiry and
// stores the claims in the request context. The referenced admin is not
// re-checked against the database; all failures share one generic body.
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortError(c, code.ErrTokenInvalid)
			return
		}

		tokenString := extractToken(authHeader)
		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil || claims.Role != "admin" {
			response.AbortError(c, code.ErrTokenInvalid)
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
