package config

import (
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/website-service/internal/contact"
	"github.com/Muskhoops/FRETXPRESS/shared/config"
)

type Config struct {
	*config.CommonConfig
	HTTP_ADDR     string
	GRPC_ADDR     string
	RELAY_URL     string
	RELAY_TIMEOUT time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CommonConfig:  config.LoadCommonConfig(),
		HTTP_ADDR:     config.GetEnv("HTTP_ADDR", ":8081"),
		GRPC_ADDR:     config.GetEnv("GRPC_ADDR", ":50054"),
		RELAY_URL:     config.GetEnv("RELAY_URL", contact.DefaultRelayURL),
		RELAY_TIMEOUT: config.GetEnvAsDuration("RELAY_TIMEOUT", 10*time.Second),
	}
}
