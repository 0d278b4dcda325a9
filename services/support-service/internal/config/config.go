package config

import (
	"strings"
	"time"

	"github.com/Muskhoops/FRETXPRESS/shared/config"
)

type Config struct {
	HTTP_ADDR       string
	GRPC_ADDR       string
	REPLY_DELAY     time.Duration
	REQUEST_TIMEOUT time.Duration
	// Unwatched conversations are dropped after this much inactivity.
	CONVERSATION_TTL time.Duration
	// Empty allows any origin.
	ALLOWED_ORIGINS []string
}

func LoadConfig() *Config {
	config.LoadDotEnv()
	return &Config{
		HTTP_ADDR:        config.GetEnv("HTTP_ADDR", ":8082"),
		GRPC_ADDR:        config.GetEnv("GRPC_ADDR", ":50052"),
		REPLY_DELAY:      config.GetEnvAsDuration("REPLY_DELAY", time.Second),
		REQUEST_TIMEOUT:  config.GetEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
		CONVERSATION_TTL: config.GetEnvAsDuration("CONVERSATION_TTL", 30*time.Minute),
		ALLOWED_ORIGINS:  splitList(config.GetEnv("ALLOWED_ORIGINS", "")),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
