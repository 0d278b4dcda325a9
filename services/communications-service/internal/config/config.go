package config

import (
	"github.com/Muskhoops/FRETXPRESS/shared/config"
)

type Config struct {
	*config.CommonConfig
	GRPC_ADDR      string
	CONSUMER_GROUP string
}

func LoadConfig() *Config {
	return &Config{
		CommonConfig:   config.LoadCommonConfig(),
		GRPC_ADDR:      config.GetEnv("GRPC_ADDR", ":50055"),
		CONSUMER_GROUP: config.GetEnv("CONSUMER_GROUP", "communications-group"),
	}
}
