// Package config loads the server configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds every setting the server reads at startup.
// Values come from the process environment, optionally seeded from a .env file.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
	Env  string `envconfig:"ENV" default:"development"`

	StoreDriver  string `envconfig:"STORE_DRIVER" default:"mongo"`
	MongoURL     string `envconfig:"MONGODB_URL"`
	DatabaseName string `envconfig:"DATABASE_NAME" default:"movie_reviews"`

	SecretKey        string `envconfig:"SECRET_KEY"`
	SecretRefreshKey string `envconfig:"SECRET_REFRESH_KEY"`

	// Comma separated list; empty means the local Vite dev server.
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"false"`

	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load reads .env (if any) and binds the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("unable to find .env, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURL == "" {
			return errors.New("MONGODB_URL is not set")
		}
	case StoreMemory:
	default:
		return errors.Errorf("unsupported STORE_DRIVER: %q", c.StoreDriver)
	}
	if c.SecretKey == "" || c.SecretRefreshKey == "" {
		return errors.New("SECRET_KEY and SECRET_REFRESH_KEY must be set")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether cookies must be issued with Secure and SameSite=None.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Origins splits ALLOWED_ORIGINS, defaulting to the local frontend.
func (c *Config) Origins() []string {
	if strings.TrimSpace(c.AllowedOrigins) == "" {
		return []string{"http://localhost:5173"}
	}
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
