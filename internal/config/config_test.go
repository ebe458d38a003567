package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	defer viper.Reset()

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", c.Port)
	assert.Equal(t, 100, c.JWTExpiryHours)
	assert.Equal(t, "https://api.github.com", c.GithubAPIBase)
	assert.Equal(t, "development", c.Env)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	defer viper.Reset()

	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "from-the-environment")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", c.Port)
	assert.Equal(t, "from-the-environment", c.JWTSecret)
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:           "5000",
			JWTSecret:      "secure-secret-at-least-32-chars-long",
			JWTExpiryHours: 100,
			GithubAPIBase:  "https://api.github.com",
			DBPassword:     "secure-password",
			DBSSLMode:      "require",
			Env:            "development",
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		c := base()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})

	t.Run("non-positive expiry", func(t *testing.T) {
		c := base()
		c.JWTExpiryHours = 0
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects weak db password", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})
}
