package config

import (
	"log"
	"time"

	"github.com/Muskhoops/FRETXPRESS/shared/config"
)

// Config is the booking service configuration.
type Config struct {
	*config.CommonConfig
	HTTP_ADDR       string
	GRPC_ADDR       string
	DRAFT_TTL       time.Duration
	REQUEST_TIMEOUT time.Duration
	// Pickup dates are enumerated in this zone.
	TIMEZONE string
}

// LoadConfig reads the environment (and .env) into a Config.
func LoadConfig() *Config {
	return &Config{
		CommonConfig:    config.LoadCommonConfig(),
		HTTP_ADDR:       config.GetEnv("HTTP_ADDR", ":8080"),
		GRPC_ADDR:       config.GetEnv("GRPC_ADDR", ":50051"),
		DRAFT_TTL:       config.GetEnvAsDuration("DRAFT_TTL", 30*time.Minute),
		REQUEST_TIMEOUT: config.GetEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
		TIMEZONE:        config.GetEnv("TIMEZONE", "Africa/Algiers"),
	}
}

// Location resolves TIMEZONE, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TIMEZONE)
	if err != nil {
		log.Printf("config: unknown TIMEZONE %q, using UTC: %v", c.TIMEZONE, err)
		return time.UTC
	}
	return loc
}
