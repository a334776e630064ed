package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment
// variables. A .env file in the working directory is picked up first if
// present.
type Config struct {
	DBPath        string `env:"LINKPAGE_DB_PATH" envDefault:"linkpage.db"`
	Port          int    `env:"PORT" envDefault:"8080"`
	BaseURL       string `env:"LINKPAGE_BASE_URL" envDefault:"http://localhost:8080"`
	WebDistPath   string `env:"LINKPAGE_WEB_DIST" envDefault:"./web/dist"`
	GeoAPIBaseURL string `env:"LINKPAGE_GEO_API_URL" envDefault:"https://ipapi.co"`
	GeoTimeoutSec int    `env:"LINKPAGE_GEO_TIMEOUT_SECONDS" envDefault:"5"`
}

// Addr returns the listen address in :port format.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
