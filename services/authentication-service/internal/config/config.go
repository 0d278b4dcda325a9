package config

import (
	"time"

	"github.com/Muskhoops/FRETXPRESS/shared/config"
)

type Config struct {
	*config.CommonConfig
	HTTP_ADDR       string
	GRPC_ADDR       string
	SESSION_TTL     time.Duration
	REQUEST_TIMEOUT time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CommonConfig:    config.LoadCommonConfig(),
		HTTP_ADDR:       config.GetEnv("HTTP_ADDR", ":8083"),
		GRPC_ADDR:       config.GetEnv("GRPC_ADDR", ":50053"),
		SESSION_TTL:     config.GetEnvAsDuration("SESSION_TTL", 24*time.Hour),
		REQUEST_TIMEOUT: config.GetEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
	}
}
