package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		StoreDriver:      StoreMongo,
		MongoURL:         "mongodb://localhost:27017",
		SecretKey:        "access",
		SecretRefreshKey: "refresh",
		RequestTimeout:   time.Second,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid mongo", mutate: func(*Config) {}},
		{name: "memory without url", mutate: func(c *Config) { c.StoreDriver = StoreMemory; c.MongoURL = "" }},
		{name: "mongo without url", mutate: func(c *Config) { c.MongoURL = "" }, wantErr: "MONGODB_URL"},
		{name: "unknown driver", mutate: func(c *Config) { c.StoreDriver = "postgres" }, wantErr: "STORE_DRIVER"},
		{name: "missing secret", mutate: func(c *Config) { c.SecretKey = "" }, wantErr: "SECRET_KEY"},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: "REQUEST_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreMemory)
	t.Setenv("SECRET_KEY", "a")
	t.Setenv("SECRET_REFRESH_KEY", "b")
	t.Setenv("PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "movie_reviews", cfg.DatabaseName)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestOrigins(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Origins())

	cfg.AllowedOrigins = " https://a.example , ,https://b.example"
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}
