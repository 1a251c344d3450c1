package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// OAuth holds the client secrets and the one-time authorization code.
type OAuth struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	Code         string `env:"OAUTH_CODE"`
}

// Config defines all environment-driven runtime options.
type Config struct {
	OAuth          OAuth
	BaseURL        string        `env:"STRAVA_BASE_URL" envDefault:"https://www.strava.com"`
	LogLevel       string        `env:"STRAVA_LOG_LEVEL" envDefault:"info"`
	CodeGrantField string        `env:"STRAVA_CODE_GRANT_FIELD" envDefault:"grant_type"`
	RedirectURI    string        `env:"STRAVA_REDIRECT_URI" envDefault:"http://localhost/exchange_token"`
	Scope          string        `env:"STRAVA_SCOPE" envDefault:"read,activity:read_all"`
	HTTPTimeout    time.Duration `env:"STRAVA_HTTP_TIMEOUT" envDefault:"0s"`
}

// OAuthSettings exposes the OAuth inputs to the credential manager.
func (c *Config) OAuthSettings() OAuth {
	return c.OAuth
}

// Load reads .env (if present) and parses environment variables into Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	return cfg, nil
}
