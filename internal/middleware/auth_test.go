package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"devconnector/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func signToken(t *testing.T, userID uint, exp time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(exp).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestAuthRequired(t *testing.T) {
	app := fiber.New()
	InitMiddleware(&config.Config{JWTSecret: testSecret})

	app.Get("/test", AuthRequired, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"userID": c.Locals("userID")})
	})

	tests := []struct {
		name           string
		header         string
		value          string
		expectedStatus int
		expectedMsg    string
		expectedUserID uint
	}{
		{
			name:           "x-auth-token header",
			header:         "x-auth-token",
			value:          signToken(t, 123, time.Hour),
			expectedStatus: http.StatusOK,
			expectedUserID: 123,
		},
		{
			name:           "bearer fallback",
			header:         "Authorization",
			value:          "Bearer " + signToken(t, 7, time.Hour),
			expectedStatus: http.StatusOK,
			expectedUserID: 7,
		},
		{
			name:           "missing token",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "No token, authorization denied",
		},
		{
			name:           "wrong auth scheme",
			header:         "Authorization",
			value:          "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "No token, authorization denied",
		},
		{
			name:           "malformed token",
			header:         "x-auth-token",
			value:          "malformed.token.here",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Token is not valid",
		},
		{
			name:           "expired token",
			header:         "x-auth-token",
			value:          signToken(t, 123, -time.Hour),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Token is not valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]any
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tt.expectedStatus == http.StatusOK {
				assert.EqualValues(t, tt.expectedUserID, body["userID"])
			} else {
				assert.Equal(t, tt.expectedMsg, body["msg"])
			}
		})
	}
}

func TestParseUserID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		userID, err := ParseUserID(testSecret, signToken(t, 42, time.Hour))
		assert.NoError(t, err)
		assert.EqualValues(t, 42, userID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseUserID("some-other-secret", signToken(t, 42, time.Hour))
		assert.Error(t, err)
	})

	t.Run("non-numeric subject", func(t *testing.T) {
		claims := jwt.MapClaims{"sub": "not-a-number", "exp": time.Now().Add(time.Hour).Unix()}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := token.SignedString([]byte(testSecret))
		assert.NoError(t, err)

		_, err = ParseUserID(testSecret, s)
		assert.Error(t, err)
	})
}
