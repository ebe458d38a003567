package middleware

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"devconnector/internal/config"
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// TokenFromRequest extracts the auth token from the x-auth-token header,
// falling back to a standard Authorization Bearer header.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := c.Get("x-auth-token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// ParseUserID validates tokenString against secret and returns the user id
// carried in the "sub" claim.
func ParseUserID(secret, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("missing subject claim")
	}

	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token: %w", err)
	}
	return uint(userID), nil
}

// AuthRequired is a middleware that enforces authentication for protected
// routes. On success the verified user id is stored in c.Locals("userID")
// and in the request context for downstream handlers and logging.
func AuthRequired(c *fiber.Ctx) error {
	tokenString := TokenFromRequest(c)
	if tokenString == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("No token, authorization denied"))
	}

	userID, err := ParseUserID(cfg.JWTSecret, tokenString)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Token is not valid"))
	}

	c.Locals("userID", userID)
	ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
	c.SetUserContext(ctx)

	return c.Next()
}
