package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type AuthClaims struct {
	Subject   string
	ExpiresAt int64
}

// parseJWT verifies an HS256 token against the shared secret
func parseJWT(jwtStr string, decodeToken string) (*AuthClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	out := &AuthClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
	}
	if out.ExpiresAt != 0 && time.Now().UTC().Unix() > out.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return out, nil
}

// authMiddleware requires a bearer token when a secret is configured
func authMiddleware(decodeToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if decodeToken == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
			return
		}

		claims, err := parseJWT(strings.TrimPrefix(header, "Bearer "), decodeToken)
		if err != nil {
			returnErrorJsonCode(err, c, 401)
			return
		}

		c.Set("userID", claims.Subject)
		c.Next()
	}
}
