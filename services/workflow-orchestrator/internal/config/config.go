package config

import (
	"github.com/Muskhoops/FRETXPRESS/shared/config"
)

type Config struct {
	*config.CommonConfig
	GRPC_ADDR string
}

// LoadConfig fills in the Temporal frontend address used by the compose stack
// when none is set.
func LoadConfig() *Config {
	cfg := &Config{
		CommonConfig: config.LoadCommonConfig(),
		GRPC_ADDR:    config.GetEnv("GRPC_ADDR", ":50056"),
	}
	if cfg.TEMPORAL_HOST_PORT == "" {
		cfg.TEMPORAL_HOST_PORT = "temporal:7233"
	}
	return cfg
}
