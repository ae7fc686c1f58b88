package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/internal/tenant"
	"github.com/camate/camate-api/internal/utils"
)

type AuthMiddleware struct {
	config *config.Config
}

func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
	}
}

// JWTAuth verifies the bearer token and publishes the claim set onto the
// request context. When the token carries a ca_code claim the tenant context
// is published too. Runs before any tenant-scoped data access in the pipeline.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := bearerToken[1]
		claims := jwt.MapClaims{}

		_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		})

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = NewContextWithClaims(ctx, claims)
		if code, ok := claims["ca_code"].(string); ok {
			ctx = tenant.WithCode(ctx, code)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// ResolveTenant is JWTAuth without the auth requirement: if a valid token is
// present its tenant context is published, otherwise the request proceeds
// anonymously. Used on public endpoints that still want tenant routing when a
// token happens to be there.
func (m *AuthMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.Next()
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(bearerToken[1], &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		})
		if err != nil {
			// Anonymous is a valid state, not an error.
			c.Next()
			return
		}

		ctx := NewContextWithClaims(c.Request.Context(), claims)
		if code, ok := claims["ca_code"].(string); ok {
			ctx = tenant.WithCode(ctx, code)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole checks the authenticated role claim.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, err := utils.GetRoleFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		if actual != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GenerateToken issues a signed token carrying the routing claims.
func (m *AuthMiddleware) GenerateToken(userID, role, caCode, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"role":     role,
		"ca_code":  caCode,
		"username": username,
		"exp":      time.Now().Add(time.Duration(m.config.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.JWTSecretKey))
}

// NewContextWithClaims attaches a verified claim set to a context.
func NewContextWithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, utils.ClaimsKey, claims)
}
