// Package config loads portal configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
//
// The four *APIURL fields point at the remote serverless functions that own
// all business logic; this process only renders pages and relays requests.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	AuthAPIURL     string `env:"AUTH_API_URL,required"`
	EventsAPIURL   string `env:"EVENTS_API_URL,required"`
	RolesAPIURL    string `env:"ROLES_API_URL,required"`
	TelegramAPIURL string `env:"TELEGRAM_API_URL,required"`

	// Username of the auth bot used to build the t.me deep link.
	TelegramBot string `env:"TELEGRAM_BOT_USERNAME" envDefault:"SparcomAuth_bot"`

	// Path to the session database. Empty selects the in-memory store.
	DBPath string `env:"SESSION_DB_PATH"`

	// SecureCookies must be set when serving over HTTPS.
	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
