package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseConfig() *Config {
	return &Config{
		Env:                      "development",
		LogLevel:                 "info",
		DBHost:                   "localhost",
		DBPort:                   "5432",
		DBUser:                   "user",
		DBPassword:               "password",
		DBName:                   "fitlog",
		DBSSLMode:                "disable",
		DBMaxOpenConns:           25,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 5,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Development defaults", func(c *Config) {}, false},
		{"Missing DB host", func(c *Config) { c.DBHost = "" }, true},
		{"Missing DB name", func(c *Config) { c.DBName = "" }, true},
		{"Zero max open conns", func(c *Config) { c.DBMaxOpenConns = 0 }, true},
		{"Zero conn lifetime", func(c *Config) { c.DBConnMaxLifetimeMinutes = 0 }, true},
		{"Production with default password", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
		}, true},
		{"Production with disabled SSL", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "s3cure-enough"
		}, true},
		{"Production fully hardened", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "s3cure-enough"
			c.DBSSLMode = "verify-full"
		}, false},
		{"Prod alias with disabled SSL", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = "s3cure-enough"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := baseConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	c := baseConfig()
	assert.False(t, c.IsProduction())

	c.Env = "production"
	assert.True(t, c.IsProduction())

	c.Env = "prod"
	assert.True(t, c.IsProduction())
}
