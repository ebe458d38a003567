package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit(t *testing.T) {
	t.Run("disabled in test env", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("disabled in development env", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("nil client errors in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		assert.Error(t, err)
		assert.False(t, allowed)
	})

	t.Run("counts against the limit", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer func() { _ = rdb.Close() }()

		for i := 0; i < 3; i++ {
			allowed, err := CheckRateLimit(context.Background(), rdb, "register", "ip:1.2.3.4", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should pass", i+1)
		}

		allowed, err := CheckRateLimit(context.Background(), rdb, "register", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)

		// a different caller has its own counter
		allowed, err = CheckRateLimit(context.Background(), rdb, "register", "ip:5.6.7.8", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)

		// the window expiring resets the counter
		mr.FastForward(2 * time.Minute)
		allowed, err = CheckRateLimit(context.Background(), rdb, "register", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	app := fiber.New()
	app.Post("/login", RateLimit(rdb, 2, time.Minute, "login"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestRateLimitFailsOpen(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	// a closed client makes every redis call fail
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	_ = rdb.Close()

	app := fiber.New()
	app.Post("/login", RateLimit(rdb, 1, time.Minute, "login"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}
}
