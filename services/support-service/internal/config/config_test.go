package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("REPLY_DELAY", "")
	t.Setenv("CONVERSATION_TTL", "")
	t.Setenv("ALLOWED_ORIGINS", " https://dropigo.dz , ,http://localhost:8081")

	cfg := LoadConfig()
	if cfg.HTTP_ADDR != ":8082" {
		t.Errorf("expected :8082, got %q", cfg.HTTP_ADDR)
	}
	if cfg.REPLY_DELAY != time.Second {
		t.Errorf("expected 1s reply delay, got %v", cfg.REPLY_DELAY)
	}
	if cfg.CONVERSATION_TTL != 30*time.Minute {
		t.Errorf("expected 30m conversation ttl, got %v", cfg.CONVERSATION_TTL)
	}
	want := []string{"https://dropigo.dz", "http://localhost:8081"}
	if !reflect.DeepEqual(cfg.ALLOWED_ORIGINS, want) {
		t.Errorf("expected %v, got %v", want, cfg.ALLOWED_ORIGINS)
	}
}
