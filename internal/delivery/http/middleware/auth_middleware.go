package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"careertrack-backend/config"
	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the Clerk session token and places the resolved
// identity into the request context. Clerk signs with RS256 (JWKS); an
// HS256 shared secret is accepted as a local-development fallback.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.AuthJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but AUTH_JWT_SECRET is not configured")
				}
				return []byte(cfg.AuthJWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})

		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		// Clerk session token claims: sub is the user id; email and names
		// ride along in the session token template
		sub, _ := claims["sub"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Token missing subject", nil)
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)
		firstName, _ := claims["first_name"].(string)
		lastName, _ := claims["last_name"].(string)

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyFirstName), firstName)
		c.Set(string(domain.KeyLastName), lastName)

		c.Next()
	}
}
